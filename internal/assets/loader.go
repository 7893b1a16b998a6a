package assets

// DefaultStyleName is the style injected when none is configured.
const DefaultStyleName = "default"

// AssetLoader defines the contract for loading stylesheets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// StyleNames lists the styles LoadStyle can find, sorted.
	StyleNames() []string
}

var builtin = NewEmbeddedLoader()

// StyleNames lists the built-in styles.
func StyleNames() []string {
	return builtin.StyleNames()
}
