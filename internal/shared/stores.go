package shared

// Stores is the fixed set of store locations known to the system.
var Stores = []string{"Store A", "Store B", "Store C"}

// ValidStore reports whether name is one of the known stores.
func ValidStore(name string) bool {
	for _, s := range Stores {
		if s == name {
			return true
		}
	}
	return false
}
