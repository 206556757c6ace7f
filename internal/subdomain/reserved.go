package subdomain

//nolint:gochecknoglobals
var reserved = map[string]struct{}{
	"@": {}, "www": {}, "mail": {}, "email": {}, "webmail": {}, "ns": {}, "dns": {},
	"api": {}, "cdn": {}, "ftp": {}, "sftp": {}, "admin": {}, "panel": {},
	"dashboard": {}, "control": {}, "dev": {}, "test": {}, "staging": {},
	"demo": {}, "blog": {}, "forum": {}, "wiki": {}, "docs": {}, "tv": {},
	"app": {}, "mobile": {}, "static": {}, "assets": {},
}

// IsReserved checks whether the name is kept by the service itself.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// Reserved lists all reserved names in no particular order.
func Reserved() []string {
	names := make([]string, 0, len(reserved))
	for name := range reserved {
		names = append(names, name)
	}
	return names
}
