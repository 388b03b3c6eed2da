package ports

// ConnectivityProbe reports whether the device may reach the ticket store.
// While offline every validation is a hard deny; there is no queued retry.
type ConnectivityProbe interface {
	Online() bool
}
