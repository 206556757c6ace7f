package registry

// fallbackData is used only when the repository could never be listed.
//
//nolint:gochecknoglobals
var fallbackData = map[string][]string{
	"ciao.su": {"cc"},
}
