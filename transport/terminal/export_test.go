package terminal

// PendingTimers - timers armed and not yet delivered. Read only after Start returned.
func (that *Server) PendingTimers() int {
	return len(that.pending)
}
