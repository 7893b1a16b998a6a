package assets

import "errors"

// AssetResolver tries a custom directory first and falls back to the
// embedded styles when the custom directory does not have the style.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// embedded styles only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
// Only ErrStyleNotFound falls through to the embedded styles; validation and
// I/O errors from the custom directory are returned as is.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// StyleNames lists every style the resolver can load: custom ones plus the
// built-ins they do not shadow.
func (r *AssetResolver) StyleNames() []string {
	if r.custom == nil {
		return r.embedded.StyleNames()
	}
	return mergeNames(r.custom.StyleNames(), r.embedded.StyleNames())
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
