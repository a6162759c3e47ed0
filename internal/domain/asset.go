package domain

// AssetPrefix is the path segment under which static files are served.
const AssetPrefix = "static/"

// AssetURL joins a request base URL (scheme://host/) with a static filename.
// An empty filename yields an empty URL.
func AssetURL(baseURL, filename string) string {
	if filename == "" {
		return ""
	}
	return baseURL + AssetPrefix + filename
}
