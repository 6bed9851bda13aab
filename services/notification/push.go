package notification

import (
	"context"
	"fmt"

	"homefix/models"

	"firebase.google.com/go/v4/messaging"
)

// Pusher delivers a stored notification to a device.
type Pusher interface {
	Send(ctx context.Context, deviceToken string, n models.Notification) error
}

// FCMPusher sends through Firebase Cloud Messaging.
type FCMPusher struct {
	Client *messaging.Client
}

func NewFCMPusher(client *messaging.Client) *FCMPusher {
	return &FCMPusher{Client: client}
}

func (p *FCMPusher) Send(ctx context.Context, deviceToken string, n models.Notification) error {
	if _, err := p.Client.Send(ctx, buildMessage(deviceToken, n)); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func buildMessage(deviceToken string, n models.Notification) *messaging.Message {
	data := map[string]string{
		"notificationId": n.ID,
		"type":           string(n.Type),
	}
	if n.NotificationTarget.Kind != models.TargetNone {
		data["relatedModel"] = string(n.NotificationTarget.Kind)
		data["relatedTo"] = n.NotificationTarget.ID
		data["path"] = n.NotificationTarget.Path()
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: data,
	}
	if n.Priority == models.NotifPriorityHigh {
		msg.Android = &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		}
		msg.APNS = &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		}
	}
	return msg
}
