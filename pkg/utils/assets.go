package utils

import (
	"strings"
)

// AssetResolver turns stored image values into public URLs. Values that
// already look like URLs are passed through; storage-prefixed paths keep
// their location; anything else is treated as a bare filename under the
// canonical storage sub-path for its domain (equipment, profile, ...).
type AssetResolver struct {
	baseURL string
}

func NewAssetResolver(baseURL string) *AssetResolver {
	return &AssetResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL resolves a raw image column value. Empty in, empty out.
func (r *AssetResolver) ImageURL(domain, value string) string {
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}

	path := value
	if !strings.HasPrefix(path, "storage/") {
		path = "storage/img/" + domain + "/" + strings.TrimLeft(path, "/")
	}

	return r.baseURL + "/" + path
}

// ImageURLPtr is ImageURL for nullable columns; nil stays nil.
func (r *AssetResolver) ImageURLPtr(domain string, value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	resolved := r.ImageURL(domain, *value)
	return &resolved
}
