package i18n

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadBundleDir reads every per-locale bundle file directly inside the root
// of fsys and merges it into data. File convention: {locale}.json,
// {locale}.yaml, or {locale}.yml. A file that cannot be read or parsed is
// logged as a warning and skipped so the remaining bundles still load.
// Bundle keys merge verbatim; no source-name prefixing is applied.
func loadBundleDir(fsys fs.FS, dir string, data map[string]map[string]any, log *slog.Logger) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		log.Warn("failed to read translation bundle directory",
			slog.String("path", dir),
			slog.String("error", err.Error()),
		)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		unmarshal, ok := bundleUnmarshaler(name)
		if !ok {
			continue
		}

		locale := strings.TrimSuffix(name, path.Ext(name))
		if locale == "" {
			continue
		}

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			log.Warn("failed to read translation bundle",
				slog.String("file", path.Join(dir, name)),
				slog.String("error", err.Error()),
			)
			continue
		}

		var tree map[string]any
		if err := unmarshal(raw, &tree); err != nil {
			log.Warn("failed to parse translation bundle",
				slog.String("file", path.Join(dir, name)),
				slog.String("error", err.Error()),
			)
			continue
		}

		bucket, ok := data[locale]
		if !ok {
			bucket = make(map[string]any, len(tree))
			data[locale] = bucket
		}
		mergeTree(bucket, tree)
	}
}

// bundleUnmarshaler picks the decoder for a bundle file by extension.
func bundleUnmarshaler(name string) (func([]byte, any) error, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return json.Unmarshal, true
	case ".yaml", ".yml":
		return yamlUnmarshal, true
	default:
		return nil, false
	}
}

// yamlUnmarshal adapts yaml.Unmarshal to the json.Unmarshal signature.
func yamlUnmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
