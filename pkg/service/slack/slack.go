// Package slack posts studio events to a Slack channel.
package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// Service posts announcements. Implementations must be safe for concurrent
// use.
type Service interface {
	// AnnounceLead posts a new-lead summary to the configured channel
	AnnounceLead(ctx context.Context, lead *model.Lead) error
}

type client struct {
	api     *slack.Client
	channel string
}

// New creates a Slack service with the provided bot token, posting to the
// given channel.
func New(token, channel string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	return &client{
		api:     slack.New(token),
		channel: channel,
	}, nil
}

func (c *client) AnnounceLead(ctx context.Context, lead *model.Lead) error {
	fields := []slack.AttachmentField{
		{Title: "Client", Value: lead.ClientName, Short: true},
		{Title: "Status", Value: lead.Status.String(), Short: true},
	}
	if lead.Company != "" {
		fields = append(fields, slack.AttachmentField{Title: "Company", Value: lead.Company, Short: true})
	}
	if lead.Source != "" {
		fields = append(fields, slack.AttachmentField{Title: "Source", Value: lead.Source, Short: true})
	}
	if lead.Budget > 0 {
		fields = append(fields, slack.AttachmentField{
			Title: "Budget", Value: fmt.Sprintf("%.0f", lead.Budget), Short: true,
		})
	}
	if lead.Demands != "" {
		fields = append(fields, slack.AttachmentField{Title: "Demands", Value: lead.Demands})
	}

	attachment := slack.Attachment{
		Color:  "#36a64f",
		Title:  "New lead received",
		Fields: fields,
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionText(fmt.Sprintf("New lead: %s", lead.ClientName), false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post lead announcement", goerr.V("channel", c.channel))
	}

	return nil
}
