// Package metrics exposes Prometheus collectors for stores, render passes,
// events and gallery sessions.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(metrics.WithRegistry(reg))
//	store := atom.NewStore(atom.WithObserver(m))
//	root := reactive.NewRoot(store, comp, reactive.WithObserver(m))
package metrics
