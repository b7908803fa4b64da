package panel

// Toast variants.
const (
	VariantSuccess = "success"
	VariantError   = "error"
)

// Toast is a user-facing notification.
type Toast struct {
	Title   string
	Message string
	Variant string
}

// Notifier receives the toasts emitted by the panel.
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(t Toast)

// Notify calls f(t).
func (f NotifierFunc) Notify(t Toast) { f(t) }

func successToast(message string) Toast {
	return Toast{Title: "Success", Message: message, Variant: VariantSuccess}
}

func errorToast(message string) Toast {
	return Toast{Title: "Error", Message: message, Variant: VariantError}
}
