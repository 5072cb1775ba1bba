package domain

// UpdatePredicate reports whether the external catalog has a newer version
// of the model described by info.
type UpdatePredicate func(info Info) bool

// HasUpdateAvailable is the default predicate: the record carries an
// update flag and it is set.
func HasUpdateAvailable(info Info) bool {
	return info.UpdateAvailable.Valid && info.UpdateAvailable.Bool
}

// UpdateFlagPredicate extends HasUpdateAvailable with additional Extra keys
// that the cache writer uses as update flags.
func UpdateFlagPredicate(keys []string) UpdatePredicate {
	if len(keys) == 0 {
		return HasUpdateAvailable
	}
	return func(info Info) bool {
		if HasUpdateAvailable(info) {
			return true
		}
		for _, k := range keys {
			v, ok := info.Extra[k]
			if !ok {
				continue
			}
			if b := ParseBool(v); b.Valid && b.Bool {
				return true
			}
		}
		return false
	}
}
