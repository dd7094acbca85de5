// Package parser ties extraction, manifest validation, record assembly and
// resource resolution together into the operations the bundle manager runs.
package parser

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/litebms/bms/internal/bundle"
	"github.com/litebms/bms/internal/device"
	oerrors "github.com/litebms/bms/internal/errors"
	"github.com/litebms/bms/internal/hap"
	"github.com/litebms/bms/internal/manifest"
	"github.com/litebms/bms/internal/output"
	"github.com/litebms/bms/internal/profile"
	"github.com/litebms/bms/internal/resource"
)

// Options configures a Parser.
type Options struct {
	InstallRoot   string
	DataRoot      string
	ParseMetadata bool
	AllowComments bool
}

// Parser runs manifest operations against a filesystem, a device and a
// resource index. It holds no mutable state and is safe for concurrent use.
type Parser struct {
	fs     afero.Fs
	device device.Info
	index  resource.Index
	opts   Options
}

// New returns a Parser.
func New(fs afero.Fs, dev device.Info, index resource.Index, opts Options) *Parser {
	return &Parser{fs: fs, device: dev, index: index, opts: opts}
}

// Result is the outcome of parsing a package.
type Result struct {
	Record      *bundle.Record              `json:"bundle"`
	Permissions []profile.PermissionRequest `json:"permissions,omitempty"`

	// Selector feeds ResolveResources once the package is extracted.
	Selector profile.ResourceSelector `json:"resources"`
}

// Attributes are the fields read for an upgrade check.
type Attributes struct {
	BundleName  string `json:"bundleName"`
	VersionCode int    `json:"versionCode"`
}

// ParseHap validates the manifest inside the HAP at path and assembles the
// record it would install as. Label and icon references are left unresolved.
func (p *Parser) ParseHap(path string) (*Result, error) {
	data, err := hap.ExtractProfile(p.fs, path)
	if err != nil {
		return nil, err
	}

	res, err := p.parseManifest(data, path, "")
	if err != nil {
		return nil, oerrors.WithLocation(err, path)
	}

	output.BundleLogger(res.Record.BundleName).Debug("package parsed",
		"path", path,
		"version", res.Record.VersionCode,
		"permissions", len(res.Permissions),
	)
	return res, nil
}

// ResolveResources resolves res's label and icon references against the
// bundle extracted at root.
func (p *Parser) ResolveResources(root string, res *Result) error {
	r := resource.NewResolver(p.fs, p.index)
	return oerrors.WithLocation(r.Resolve(root, res.Selector, res.Record), root)
}

// ParseInstalled parses the manifest of a bundle already extracted at dir
// and resolves its resources in place.
func (p *Parser) ParseInstalled(dir string) (*Result, error) {
	manifestPath := filepath.Join(dir, hap.ProfileName)
	data, err := afero.ReadFile(p.fs, manifestPath)
	if err != nil {
		return nil, &oerrors.DetailError{
			Code:     oerrors.CodeExtractProfile,
			Message:  "reading installed manifest",
			Location: manifestPath,
			Err:      err,
		}
	}

	res, err := p.parseManifest(data, manifestPath, dir)
	if err != nil {
		return nil, oerrors.WithLocation(err, manifestPath)
	}

	if err := p.ResolveResources(dir, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadAttributes reads only the bundle name and version code of the HAP at
// path.
func (p *Parser) ReadAttributes(path string) (Attributes, error) {
	data, err := hap.ExtractProfile(p.fs, path)
	if err != nil {
		return Attributes{}, err
	}

	root, err := p.decode(data, path)
	if err != nil {
		return Attributes{}, oerrors.WithLocation(err, path)
	}

	app := root.Tree("app")
	name, ok := app.Child("bundleName").AsString()
	if !ok {
		return Attributes{}, oerrors.WithLocation(
			oerrors.New(oerrors.CodeBundleNameMissing, "app.bundleName", "bundleName is required"), path)
	}
	code := app.Tree("version").Int("code", -1)
	if code == -1 {
		return Attributes{}, oerrors.WithLocation(
			oerrors.New(oerrors.CodeVersionCode, "app.version.code", "version code is required"), path)
	}

	return Attributes{BundleName: name, VersionCode: code}, nil
}

func (p *Parser) decode(data []byte, name string) (manifest.Node, error) {
	return manifest.Decode(data, manifest.DecodeOptions{
		Filename:      name,
		AllowComments: p.opts.AllowComments,
	})
}

// parseManifest runs decode, profile validation, permission parsing and
// assembly. An empty codePath derives it from the install root.
func (p *Parser) parseManifest(data []byte, name, codePath string) (*Result, error) {
	root, err := p.decode(data, name)
	if err != nil {
		return nil, err
	}

	prof, sel, err := profile.Parse(root, p.device)
	if err != nil {
		return nil, err
	}

	perms, err := profile.ParsePermissions(root.Tree("module"))
	if err != nil {
		return nil, err
	}

	rec, err := bundle.Assemble(prof, sel, bundle.Options{
		InstallRoot:   p.opts.InstallRoot,
		DataRoot:      p.opts.DataRoot,
		CodePath:      codePath,
		ParseMetadata: p.opts.ParseMetadata,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Record: rec, Permissions: perms, Selector: sel}, nil
}
