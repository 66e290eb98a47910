package storage

import "strings"

const separator = ":"

var escaper = strings.NewReplacer("%", "%25", separator, "%3A")

// encodeKey builds "table:part:part". Each part is escaped so a tenant id
// or an address containing the separator can never alias another key.
func encodeKey(table string, parts ...string) []byte {
	var b strings.Builder
	b.WriteString(escaper.Replace(table))
	for _, part := range parts {
		b.WriteString(separator)
		b.WriteString(escaper.Replace(part))
	}
	return []byte(b.String())
}

// encodePrefix is encodeKey with a trailing separator, so prefix "W1"
// never matches rows of tenant "W10".
func encodePrefix(table string, parts ...string) []byte {
	return append(encodeKey(table, parts...), separator...)
}

var unescaper = strings.NewReplacer("%3A", separator, "%25", "%")

// decodeKey splits a stored key back into its table and parts.
func decodeKey(key []byte) (table string, parts []string) {
	fields := strings.Split(string(key), separator)
	for i := range fields {
		fields[i] = unescaper.Replace(fields[i])
	}
	return fields[0], fields[1:]
}
