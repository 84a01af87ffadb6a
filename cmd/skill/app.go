package main

import (
	"bitbucket.org/sotavant/voice-skill/internal/logger"
	"bitbucket.org/sotavant/voice-skill/internal/models"
	"bitbucket.org/sotavant/voice-skill/internal/skill"
	"bitbucket.org/sotavant/voice-skill/internal/ssml"
	"bitbucket.org/sotavant/voice-skill/internal/store"
	"context"
	"fmt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	intentReadMessages = "ReadMessages"
	intentSendMessage  = "SendMessage"

	slotRecipient = "recipient"
	slotText      = "text"

	// attrCursor counts the messages already read out in this session.
	attrCursor = "cursor"

	helpText = "You can say read my messages, or send a message to someone."
)

type app struct {
	store store.Store
}

func newApp(s store.Store) *app {
	return &app{store: s}
}

func (a *app) skill(cfg skill.Config) *skill.Skill {
	sk := skill.New(cfg)
	sk.OnLaunch(a.launch)
	sk.OnSessionEnded(a.sessionEnded)
	sk.OnIntent(a.readMessages, intentReadMessages)
	sk.OnIntent(a.sendMessage, intentSendMessage)
	sk.OnIntent(a.help, "AMAZON.HelpIntent")
	sk.OnIntent(a.stop, "AMAZON.StopIntent", "AMAZON.CancelIntent")
	return sk
}

func (a *app) launch(ctx context.Context, req *models.LaunchRequest) (*models.Response, error) {
	messages, err := a.store.ListMessages(ctx, req.Session.UserID)
	if err != nil {
		logger.Log.Debug("cannot load messages for user", zap.Error(err))
		return nil, err
	}

	text := "You have no new messages."
	switch n := len(messages); {
	case n == 1:
		text = "You have 1 new message."
	case n > 1:
		text = fmt.Sprintf("You have %d new messages.", n)
	}

	if req.Session.New {
		text = "Welcome to your inbox. " + text
	}
	req.Session.Set(attrCursor, models.Number(0))

	resp := models.NewResponse(req, models.Say(text), models.RepromptText(helpText))
	return resp.Add(models.SimpleCard("Inbox", text)), nil
}

func (a *app) readMessages(ctx context.Context, req *models.IntentRequest) (*models.Response, error) {
	messages, err := a.store.ListMessages(ctx, req.Session.UserID)
	if err != nil {
		return nil, err
	}

	cursor, _ := req.Session.Get(attrCursor).Num()
	next := int(cursor)
	if next >= len(messages) {
		return models.NewResponse(req, models.Say("There are no more messages.")).EndSession(true), nil
	}

	msg := messages[next]
	req.Session.Set(attrCursor, models.Number(float64(next+1)))

	speech := ssml.Speak(
		ssml.Sentence("Message from "+ssml.Text(msg.Sender)),
		ssml.Break("", "500ms"),
		ssml.Sentence(ssml.Text(msg.Payload)),
	)
	return models.NewResponse(req,
		models.Markup(speech.String()),
		models.RepromptText("Say next to hear the next message."),
		models.SimpleCard("Message from "+msg.Sender, msg.Payload),
	), nil
}

func (a *app) sendMessage(ctx context.Context, req *models.IntentRequest) (*models.Response, error) {
	// keep what the user already said so that follow-up turns can fill the rest
	for name, v := range req.Intent.Slots {
		if v.IsNull() {
			continue
		}
		if err := req.PersistSlots(name); err != nil {
			return nil, err
		}
	}

	recipient := req.Session.Get(slotRecipient).String()
	if recipient == "" {
		return models.NewResponse(req,
			models.Say("Who should I send it to?"),
			models.RepromptText("Tell me the name of the recipient."),
		), nil
	}
	text := req.Session.Get(slotText).String()
	if text == "" {
		return models.NewResponse(req,
			models.Say(fmt.Sprintf("What should I tell %s?", recipient)),
			models.RepromptText("Tell me the message."),
		), nil
	}

	userID, err := a.store.FindRecipient(ctx, recipient)
	if errors.Is(err, store.ErrNotFound) {
		_ = req.Session.Delete(slotRecipient)
		return models.NewResponse(req,
			models.Say(fmt.Sprintf("I don't know anyone called %s. Who should I send it to?", recipient)),
			models.RepromptText("Tell me the name of the recipient."),
		), nil
	}
	if err != nil {
		return nil, err
	}

	msg := store.Message{Sender: req.Session.UserID, Payload: text}
	if err := a.store.SaveMessage(ctx, userID, msg); err != nil {
		return nil, err
	}

	for _, k := range []string{slotRecipient, slotText} {
		if req.Session.Contains(k) {
			_ = req.Session.Delete(k)
		}
	}

	return models.NewResponse(req,
		models.Say(fmt.Sprintf("Message sent to %s.", recipient)),
		models.SimpleCard("Message sent", text),
	).EndSession(true), nil
}

func (a *app) help(_ context.Context, req *models.IntentRequest) (*models.Response, error) {
	return models.NewResponse(req, models.Say(helpText), models.RepromptText(helpText)), nil
}

func (a *app) stop(_ context.Context, req *models.IntentRequest) (*models.Response, error) {
	return models.NewResponse(req, models.Say("Goodbye.")).EndSession(true), nil
}

func (a *app) sessionEnded(_ context.Context, req *models.SessionEndedRequest) (*models.Response, error) {
	logger.Log.Debug("session ended",
		zap.String("session", req.Session.ID),
		zap.String("reason", string(req.Reason)),
	)
	return nil, nil
}
