package xmlutil

import "encoding/xml"

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// Matches reports whether n has want's local name and, if want has a
// namespace, want's namespace. gii-norm documents are not namespaced,
// so an empty want.Space matches any namespace.
func Matches(n, want xml.Name) bool {
	if n.Local != want.Local {
		return false
	}
	return want.Space == "" || n.Space == want.Space
}
