package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AddReleases controls where links to other release channels go in the release notes
type AddReleases string

const (
	AddReleasesOff    AddReleases = ""
	AddReleasesTop    AddReleases = "top"
	AddReleasesBottom AddReleases = "bottom"
)

// TextOption is a template that can be turned off with `false`.
// An empty Text means the built-in default.
type TextOption struct {
	Disabled bool
	Text     string
}

// LabelsOption is a list of label templates that can be turned off with `false`.
// Nil Templates means the built-in default.
type LabelsOption struct {
	Disabled  bool
	Templates []string
}

// Options is the normalized configuration of a run
type Options struct {
	GitHubURL      string
	Proxy          string
	Assets         []AssetSpec
	DraftRelease   bool
	SuccessComment TextOption
	FailComment    TextOption
	FailTitle      TextOption
	Labels         []string
	Assignees      []string
	ReleasedLabels LabelsOption
	AddReleases    AddReleases
}

// Validate checks options that cannot be checked while parsing
func (o *Options) Validate() error {
	if o.Proxy != "" {
		u, err := url.Parse(o.Proxy)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return goerr.New("invalid proxy URL", goerr.V("proxy", o.Proxy), goerr.T(types.ErrTagConfig))
		}
	}
	if o.GitHubURL != "" {
		u, err := url.Parse(o.GitHubURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return goerr.New("invalid GitHub URL", goerr.V("github_url", o.GitHubURL), goerr.T(types.ErrTagConfig))
		}
	}
	for i, a := range o.Assets {
		if strings.TrimSpace(a.Path) == "" {
			return goerr.New("asset path is empty", goerr.V("index", i), goerr.T(types.ErrTagConfig))
		}
	}
	switch o.AddReleases {
	case AddReleasesOff, AddReleasesTop, AddReleasesBottom:
	default:
		return goerr.New("addReleases must be false, \"top\" or \"bottom\"",
			goerr.V("add_releases", o.AddReleases), goerr.T(types.ErrTagConfig))
	}
	return nil
}

func configError(name string, v any, msg string) error {
	return goerr.New(msg, goerr.V("option", name), goerr.V("value", v), goerr.T(types.ErrTagConfig))
}

// ParseAssetSpecs accepts a string, a table with "path" (string or array) plus optional
// "name" and "label", or an array of either.
func ParseAssetSpecs(v any) ([]AssetSpec, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil, configError("assets", v, "asset path is empty")
		}
		return []AssetSpec{{Path: val}}, nil
	case map[string]any:
		return parseAssetTable(val)
	case []any:
		var specs []AssetSpec
		for _, item := range val {
			if item == nil {
				return nil, configError("assets", v, "asset entry is empty")
			}
			parsed, err := ParseAssetSpecs(item)
			if err != nil {
				return nil, err
			}
			specs = append(specs, parsed...)
		}
		return specs, nil
	case []string:
		specs := make([]AssetSpec, 0, len(val))
		for _, p := range val {
			if strings.TrimSpace(p) == "" {
				return nil, configError("assets", v, "asset path is empty")
			}
			specs = append(specs, AssetSpec{Path: p})
		}
		return specs, nil
	default:
		return nil, configError("assets", v, "assets must be a string, a table or an array")
	}
}

func parseAssetTable(t map[string]any) ([]AssetSpec, error) {
	name, ok := optionalString(t["name"])
	if !ok {
		return nil, configError("assets.name", t["name"], "asset name must be a string")
	}
	label, ok := optionalString(t["label"])
	if !ok {
		return nil, configError("assets.label", t["label"], "asset label must be a string")
	}

	var paths []string
	switch p := t["path"].(type) {
	case string:
		paths = []string{p}
	case []any:
		for _, item := range p {
			s, ok := item.(string)
			if !ok {
				return nil, configError("assets.path", t["path"], "asset path must be a string")
			}
			paths = append(paths, s)
		}
	default:
		return nil, configError("assets.path", t["path"], "asset table requires a path")
	}

	specs := make([]AssetSpec, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			return nil, configError("assets.path", t["path"], "asset path is empty")
		}
		specs = append(specs, AssetSpec{Path: p, Name: name, Label: label})
	}
	return specs, nil
}

func optionalString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}

// ParseTextOption accepts nil (default), false (disabled) or a non-empty string
func ParseTextOption(name string, v any) (TextOption, error) {
	switch val := v.(type) {
	case nil:
		return TextOption{}, nil
	case bool:
		if val {
			return TextOption{}, configError(name, v, "option must be a string or false")
		}
		return TextOption{Disabled: true}, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return TextOption{}, configError(name, v, "option must not be empty")
		}
		return TextOption{Text: val}, nil
	default:
		return TextOption{}, configError(name, v, "option must be a string or false")
	}
}

// ParseStringList accepts nil, a string or an array of non-empty strings
func ParseStringList(name string, v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil, configError(name, v, "option must not be empty")
		}
		return []string{val}, nil
	case []string:
		return ParseStringList(name, toAnySlice(val))
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return nil, configError(name, v, "option must contain non-empty strings")
			}
			list = append(list, s)
		}
		return list, nil
	default:
		return nil, configError(name, v, "option must be a string or an array of strings")
	}
}

// ParseLabelsOption accepts nil (default), false (disabled), a string or an array of strings
func ParseLabelsOption(name string, v any) (LabelsOption, error) {
	if b, ok := v.(bool); ok {
		if b {
			return LabelsOption{}, configError(name, v, "option must be an array of strings or false")
		}
		return LabelsOption{Disabled: true}, nil
	}
	list, err := ParseStringList(name, v)
	if err != nil {
		return LabelsOption{}, err
	}
	return LabelsOption{Templates: list}, nil
}

// ParseAddReleases accepts nil, false, "top" or "bottom"
func ParseAddReleases(v any) (AddReleases, error) {
	switch val := v.(type) {
	case nil:
		return AddReleasesOff, nil
	case bool:
		if !val {
			return AddReleasesOff, nil
		}
	case string:
		switch AddReleases(val) {
		case AddReleasesTop, AddReleasesBottom:
			return AddReleases(val), nil
		}
	}
	return AddReleasesOff, configError("addReleases", v, "addReleases must be false, \"top\" or \"bottom\"")
}

func toAnySlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
