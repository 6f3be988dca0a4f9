package app

import "go.uber.org/zap"

// Event bus topics. Publish is synchronous; subscribers observe state, they
// never mutate it.
const (
	TopicAuthLogin      = "auth.login"
	TopicAuthLogout     = "auth.logout"
	TopicCartCheckout   = "cart.checkout"
	TopicArtworkCreated = "portfolio.created"
	TopicArtworkUpdated = "portfolio.updated"
	TopicArtworkDeleted = "portfolio.deleted"
)

// initAudit subscribes the operation audit log to every domain event. This
// is the demo's stand-in for a real operator log table.
func (a *Application) initAudit() {
	audit := func(topic string) func(device string, detail string) {
		return func(device string, detail string) {
			zap.L().Info("audit",
				zap.String("event", topic),
				zap.String("device", device),
				zap.String("detail", detail),
			)
		}
	}
	for _, topic := range []string{
		TopicAuthLogin,
		TopicAuthLogout,
		TopicCartCheckout,
		TopicArtworkCreated,
		TopicArtworkUpdated,
		TopicArtworkDeleted,
	} {
		_ = a.bus.Subscribe(topic, audit(topic))
	}
}
