// Package atom provides context keys and the store that holds their values.
//
// A Key is an opaque handle for one shared value cell. A Store maps keys to
// their current values:
//
//	open := atom.NewKey(false)
//	store := atom.NewStore()
//
//	unsubscribe := atom.Subscribe(store, open, func() {
//	    fmt.Println("open is now", atom.Get(store, open))
//	})
//	defer unsubscribe()
//
//	atom.Set(store, open, true)
//
// Reads of a key that was never written return the key's default. Keys never
// interact with each other, and the last write to a key wins.
package atom
