package entity

// Canonical order statuses (kitchen-flow vocabulary). The generic
// status-change endpoint historically used a second vocabulary
// ("Preparando", "Listo para recoger"); NormalizeStatus folds it into the
// canonical one so only these four values are ever persisted.
const (
	StatusWaiting   = "En espera"
	StatusCooking   = "Cocinando"
	StatusReady     = "Listo para entregar"
	StatusDelivered = "Entregado"
)

var legacyStatus = map[string]string{
	"Preparando":         StatusCooking,
	"Listo para recoger": StatusReady,
}

// NormalizeStatus maps a client-supplied status onto the canonical
// vocabulary. The second return is false for values outside the allow-list.
func NormalizeStatus(s string) (string, bool) {
	if c, ok := legacyStatus[s]; ok {
		return c, true
	}
	switch s {
	case StatusWaiting, StatusCooking, StatusReady, StatusDelivered:
		return s, true
	}
	return "", false
}

// nextStatus encodes the one-directional transition graph. Cancellation is
// not a status: it deletes the order and is guarded separately.
var nextStatus = map[string]string{
	StatusWaiting: StatusCooking,
	StatusCooking: StatusReady,
	StatusReady:   StatusDelivered,
}

// CanTransition reports whether to is reachable from from in one step.
func CanTransition(from, to string) bool {
	return nextStatus[from] == to
}
