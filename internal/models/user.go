package models

// DeliveryChannel names the provider used to reach a user
type DeliveryChannel string

const (
	DeliveryChannelDiscord  DeliveryChannel = "discord"
	DeliveryChannelTelegram DeliveryChannel = "telegram"
	DeliveryChannelSocket   DeliveryChannel = "socket"
	DeliveryChannelWebhook  DeliveryChannel = "webhook"
)

// User is an external identity known to the bot
type User struct {
	// ID is the stable identifier used across parties
	ID string `json:"id"`

	// Username is the handle other players type to refer to this user
	Username string `json:"username"`

	// DisplayName is shown in notifications
	DisplayName string `json:"displayName"`

	// Channel is where notifications for this user are delivered
	Channel DeliveryChannel `json:"channel"`

	// ContactHandle is the provider address (chat id, discord user id, phone)
	ContactHandle string `json:"contactHandle"`

	// Language is the user's preferred BCP 47 tag
	Language string `json:"language,omitempty"`
}

// Name returns the best human readable name for the user
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
