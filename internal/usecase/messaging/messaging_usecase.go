package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

// Icebreakers is an AI suggestion source with a canned fallback. The
// gemini-backed implementation satisfies it; a nil source means canned
// suggestions only.
type Icebreakers interface {
	Suggest(ctx context.Context, viewer, partner *domain.Profile) ([]string, error)
}

// DefaultIcebreakers are the canned openers shown when no suggestion
// source is configured or it fails.
var DefaultIcebreakers = []string{
	"👋 Enjoyed your talk!",
	"☕ Free for coffee?",
	"🤝 Let's connect on LinkedIn",
	"🍕 Lunch plans?",
}

type MessagingUseCase struct {
	messageRepo repository.MessageRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	icebreakers Icebreakers

	dailyLimit int
	window     time.Duration
	now        func() time.Time
}

func NewMessagingUseCase(
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	icebreakers Icebreakers,
	dailyLimit int,
	window time.Duration,
) *MessagingUseCase {
	return &MessagingUseCase{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		icebreakers: icebreakers,
		dailyLimit:  dailyLimit,
		window:      window,
		now:         time.Now,
	}
}

// SendRequest is the message-send payload. The receiver comes from the
// URL, not the body.
type SendRequest struct {
	ReceiverID   string `json:"-"`
	Content      string `json:"content" binding:"required,notblank,max=2000"`
	IsIcebreaker bool   `json:"is_icebreaker"`
}

// Send persists a message after the anti-spam check. First-contact
// conversations are capped at dailyLimit messages per trailing window;
// once the receiver has replied even once, the cap no longer applies.
// The count-then-insert sequence is not atomic: two near-simultaneous
// sends can jointly overshoot the cap by one, which is acceptable.
func (uc *MessagingUseCase) Send(ctx context.Context, eventID, senderID string, req *SendRequest) (*domain.Message, error) {
	if senderID == req.ReceiverID {
		return nil, domain.ErrSelfMessage
	}

	since := uc.now().Add(-uc.window)
	sent, err := uc.messageRepo.CountSentSince(ctx, eventID, senderID, req.ReceiverID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count sent messages: %w", err)
	}

	if sent >= uc.dailyLimit {
		replies, err := uc.messageRepo.CountSentSince(ctx, eventID, req.ReceiverID, senderID, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("failed to count replies: %w", err)
		}
		if replies == 0 {
			return nil, domain.ErrDailyLimitReached
		}
	}

	msg := &domain.Message{
		EventID:      eventID,
		SenderID:     senderID,
		ReceiverID:   req.ReceiverID,
		Content:      req.Content,
		IsIcebreaker: req.IsIcebreaker,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// ThreadMessage is one message as seen by the viewer.
type ThreadMessage struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	IsOutgoing   bool      `json:"is_outgoing"`
	IsRead       bool      `json:"is_read"`
	IsIcebreaker bool      `json:"is_icebreaker"`
	CreatedAt    time.Time `json:"created_at"`
}

// Thread returns the full conversation with the partner, oldest first,
// and marks the partner's unread messages as read. The read-marking is
// an idempotent batch update; a message inserted concurrently simply
// stays unread until the next open.
func (uc *MessagingUseCase) Thread(ctx context.Context, eventID, viewerID, partnerID string) ([]ThreadMessage, error) {
	msgs, err := uc.messageRepo.ListThread(ctx, eventID, viewerID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread: %w", err)
	}

	if err := uc.messageRepo.MarkRead(ctx, eventID, partnerID, viewerID); err != nil {
		return nil, fmt.Errorf("failed to mark thread read: %w", err)
	}

	out := make([]ThreadMessage, 0, len(msgs))
	for _, m := range msgs {
		read := m.Read
		if m.SenderID == partnerID {
			// Just marked read above.
			read = true
		}
		out = append(out, ThreadMessage{
			ID:           m.ID,
			Content:      m.Content,
			IsOutgoing:   m.SenderID == viewerID,
			IsRead:       read,
			IsIcebreaker: m.IsIcebreaker,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}

// MarkThreadRead flips all unread partner->viewer messages in the event.
func (uc *MessagingUseCase) MarkThreadRead(ctx context.Context, eventID, viewerID, partnerID string) error {
	return uc.messageRepo.MarkRead(ctx, eventID, partnerID, viewerID)
}

// Conversation summarizes one chat partner for the conversation list.
type Conversation struct {
	PartnerID    string    `json:"partner_id"`
	PartnerName  string    `json:"partner_name"`
	PartnerImage *string   `json:"partner_image"`
	LastMessage  string    `json:"last_message"`
	LastActivity time.Time `json:"last_activity"`
	UnreadCount  int       `json:"unread_count"`
}

// Conversations groups the viewer's messages by partner, newest
// conversation first.
func (uc *MessagingUseCase) Conversations(ctx context.Context, eventID, viewerID string) ([]Conversation, error) {
	msgs, err := uc.messageRepo.ListForUser(ctx, eventID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	unread := map[string]int{}
	for _, m := range msgs {
		if m.ReceiverID == viewerID && !m.Read {
			unread[m.SenderID]++
		}
	}

	seen := map[string]bool{}
	var conversations []Conversation
	// msgs are newest first, so the first message per partner is the
	// latest one.
	for _, m := range msgs {
		partnerID := m.SenderID
		lastMessage := m.Content
		if m.SenderID == viewerID {
			partnerID = m.ReceiverID
			lastMessage = "You: " + m.Content
		}
		if seen[partnerID] {
			continue
		}
		seen[partnerID] = true

		conv := Conversation{
			PartnerID:    partnerID,
			PartnerName:  "Anonymous",
			LastMessage:  lastMessage,
			LastActivity: m.CreatedAt,
			UnreadCount:  unread[partnerID],
		}
		if user, err := uc.userRepo.GetByID(ctx, partnerID); err == nil {
			conv.PartnerName = user.Name
			conv.PartnerImage = user.Image
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// SuggestIcebreakers returns conversation openers for the partner,
// falling back to the canned set when no suggestion source is wired or
// profiles are unavailable.
func (uc *MessagingUseCase) SuggestIcebreakers(ctx context.Context, eventID, viewerID, partnerID string) []string {
	if uc.icebreakers == nil {
		return DefaultIcebreakers
	}
	viewer, err := uc.profileRepo.GetByUserAndEvent(ctx, viewerID, eventID)
	if err != nil {
		return DefaultIcebreakers
	}
	partner, err := uc.profileRepo.GetByUserAndEvent(ctx, partnerID, eventID)
	if err != nil {
		return DefaultIcebreakers
	}
	suggestions, err := uc.icebreakers.Suggest(ctx, viewer, partner)
	if err != nil || len(suggestions) == 0 {
		return DefaultIcebreakers
	}
	return suggestions
}
