// Package bot hosts the Telegram transport: a single-goroutine dispatcher
// that translates updates into engine calls, and the deliverer the engine
// fans notifications out through.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shufflegram/backend/internal/engine"
	"github.com/shufflegram/backend/internal/models"
)

type pendingKind int

const (
	pendingComment pendingKind = iota + 1
	pendingReply
	pendingAnon
)

// pendingInput tracks a user we asked for free text. Comment and reply
// inputs are consumed by the next message; anon mode persists until /stop.
type pendingInput struct {
	kind         pendingKind
	postID       string
	commentIndex int
}

// Dispatcher consumes the update long-poll channel and applies every event
// against the engine. Updates are handled strictly one at a time; the only
// concurrency in the process is the engine's outbound fan-out.
type Dispatcher struct {
	api    *tgbotapi.BotAPI
	engine *engine.Engine

	// pending is touched only by the Run goroutine.
	pending map[string]pendingInput
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(api *tgbotapi.BotAPI, eng *engine.Engine) *Dispatcher {
	return &Dispatcher{
		api:     api,
		engine:  eng,
		pending: make(map[string]pendingInput),
	}
}

// Run blocks, consuming updates until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := d.api.GetUpdatesChan(cfg)
	log.Printf("bot @%s dispatching updates", d.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			d.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			d.handleUpdate(ctx, update)
		}
	}
}

func (d *Dispatcher) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		d.handleCommand(ctx, chatID, userID, msg)
		return
	}
	if len(msg.Photo) > 0 {
		d.handlePhoto(ctx, chatID, userID, msg)
		return
	}

	switch msg.Text {
	case btnShuffle:
		delete(d.pending, userID)
		d.handleShuffle(ctx, chatID, userID)
	case btnProfile:
		delete(d.pending, userID)
		d.handleProfile(ctx, chatID, userID)
	case btnTop:
		delete(d.pending, userID)
		d.handleLeaderboard(ctx, chatID, userID)
	case btnTrending:
		delete(d.pending, userID)
		d.handleTrending(ctx, chatID)
	case btnSaved:
		delete(d.pending, userID)
		d.handleSaved(ctx, chatID, userID)
	case btnAnonChat:
		d.handleAnonChatStart(ctx, chatID, userID)
	case btnComments:
		delete(d.pending, userID)
		d.handleCommentsDigest(ctx, chatID, userID)
	case btnSettings:
		delete(d.pending, userID)
		d.handleSettings(ctx, chatID, userID)
	case btnAdmin:
		delete(d.pending, userID)
		d.handleAdminPanel(ctx, chatID, userID)
	default:
		d.handleFreeText(ctx, chatID, userID, msg.Text)
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, chatID int64, userID string, msg *tgbotapi.Message) {
	delete(d.pending, userID)
	switch msg.Command() {
	case "start":
		if _, err := d.engine.EnsureUser(ctx, userID); err != nil {
			d.replyError(chatID, err)
			return
		}
		if payload := msg.CommandArguments(); payload != "" {
			if err := d.engine.RegisterReferral(ctx, userID, payload); err != nil {
				log.Printf("register referral for %s: %v", userID, err)
			}
		}
		admin, _ := d.engine.IsAdmin(ctx, userID)
		reply := tgbotapi.NewMessage(chatID, "Welcome! Send a photo to share it anonymously, or hit Shuffle to browse.")
		reply.ReplyMarkup = mainKeyboard(admin)
		d.send(reply)
	case "stop":
		if _, err := d.engine.StopAnonChat(ctx, userID); err != nil {
			if errors.Is(err, engine.ErrNoConversation) {
				d.reply(chatID, "You are not in an anonymous conversation.")
				return
			}
			d.replyError(chatID, err)
			return
		}
		d.reply(chatID, "Anonymous conversation ended.")
	case "help":
		d.reply(chatID, "Send a photo to upload it. Shuffle shows you random posts from other users. Everything is anonymous.")
	case "verify":
		d.adminCommand(ctx, chatID, msg, d.engine.VerifyUser, "User verified.")
	case "ban":
		d.adminCommand(ctx, chatID, msg, d.engine.BanUser, "User banned; their posts are gone.")
	case "unban":
		d.adminCommand(ctx, chatID, msg, d.engine.UnbanUser, "User unbanned.")
	case "makeadmin":
		d.adminCommand(ctx, chatID, msg, d.engine.PromoteAdmin, "User promoted to admin.")
	default:
		d.reply(chatID, "Unknown command.")
	}
}

// adminCommand runs a user-targeted admin action. The target id is the
// command argument; the engine enforces the permission check.
func (d *Dispatcher) adminCommand(ctx context.Context, chatID int64, msg *tgbotapi.Message, action func(ctx context.Context, adminID, targetID string) error, done string) {
	adminID := strconv.FormatInt(msg.From.ID, 10)
	targetID := strings.TrimSpace(msg.CommandArguments())
	if targetID == "" {
		d.reply(chatID, "Usage: /"+msg.Command()+" <user id>")
		return
	}
	if err := action(ctx, adminID, targetID); err != nil {
		if errors.Is(err, engine.ErrForbidden) {
			d.reply(chatID, "Admins only.")
			return
		}
		d.replyError(chatID, err)
		return
	}
	d.reply(chatID, done)
}

func (d *Dispatcher) handlePhoto(ctx context.Context, chatID int64, userID string, msg *tgbotapi.Message) {
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	post, err := d.engine.Upload(ctx, userID, fileID)
	if err != nil {
		var rateErr *engine.RateLimitError
		if errors.As(err, &rateErr) {
			d.reply(chatID, fmt.Sprintf("Slow down: only %d uploads per hour. Try again later.", rateErr.Limit))
			return
		}
		if errors.Is(err, engine.ErrBanned) {
			d.reply(chatID, "You are banned from uploading.")
			return
		}
		d.replyError(chatID, err)
		return
	}

	reply := tgbotapi.NewMessage(chatID, "Photo shared! Your followers have been notified.")
	reply.ReplyMarkup = ownPostKeyboard(post.ID)
	d.send(reply)
}

func (d *Dispatcher) handleShuffle(ctx context.Context, chatID int64, userID string) {
	post, err := d.engine.NextPost(ctx, userID)
	if err != nil {
		var shufErr *engine.ShuffleLimitError
		if errors.As(err, &shufErr) {
			link := fmt.Sprintf("https://t.me/%s?start=%s", d.api.Self.UserName, userID)
			d.reply(chatID, fmt.Sprintf(
				"You used all %d shuffles. Invite %d friends to unlock unlimited shuffles:\n%s",
				shufErr.Limit, shufErr.ReferralsRequired, link))
			return
		}
		if errors.Is(err, engine.ErrFeedExhausted) {
			d.reply(chatID, "No new posts right now. Check back later!")
			return
		}
		d.replyError(chatID, err)
		return
	}

	level, verified := d.engine.UploaderBadge(ctx, post.Uploader)
	caption := fmt.Sprintf("Anonymous (Lv%d)%s", level, verifiedSuffix(verified))
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(post.FileID))
	photo.Caption = caption
	photo.ReplyMarkup = postActionsKeyboard(post.ID, post.Uploader)
	d.send(photo)
}

func (d *Dispatcher) handleProfile(ctx context.Context, chatID int64, userID string) {
	profile, err := d.engine.Profile(ctx, userID)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	text := fmt.Sprintf(
		"👤 Your profile\n\nLevel %d (%d XP)\nUploads: %d (%d today)\nSaved: %d\nFollowing: %d | Followers: %d\nReferrals: %d\nVerified: %s",
		profile.Level, profile.XP,
		profile.Uploads, profile.PostsToday,
		profile.Saved,
		profile.Following, profile.Followers,
		profile.Referrals,
		onOff(profile.Verified),
	)
	d.reply(chatID, text)
}

func (d *Dispatcher) handleLeaderboard(ctx context.Context, chatID int64, userID string) {
	entries, err := d.engine.Leaderboard(ctx, userID, 10)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if len(entries) == 0 {
		d.reply(chatID, "Nobody on the leaderboard yet.")
		return
	}
	var b strings.Builder
	b.WriteString("🏆 Top users\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s | Lv%d (%d XP)\n", i+1, e.DisplayID, e.Level, e.XP)
	}
	d.reply(chatID, b.String())
}

func (d *Dispatcher) handleTrending(ctx context.Context, chatID int64) {
	posts, err := d.engine.Trending(ctx, 5)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if len(posts) == 0 {
		d.reply(chatID, "Nothing trending yet.")
		return
	}
	for _, post := range posts {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(post.FileID))
		photo.Caption = fmt.Sprintf("🔥 %d 👍 / %d 👎", post.Likes, post.Dislikes)
		photo.ReplyMarkup = postActionsKeyboard(post.ID, post.Uploader)
		d.send(photo)
	}
}

func (d *Dispatcher) handleSaved(ctx context.Context, chatID int64, userID string) {
	posts, err := d.engine.SavedPosts(ctx, userID)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if len(posts) == 0 {
		d.reply(chatID, "You have no saved posts.")
		return
	}
	const maxShown = 10
	if len(posts) > maxShown {
		posts = posts[len(posts)-maxShown:]
	}
	for _, post := range posts {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(post.FileID))
		photo.Caption = fmt.Sprintf("📌 %d 👍", post.Likes)
		photo.ReplyMarkup = postActionsKeyboard(post.ID, post.Uploader)
		d.send(photo)
	}
}

func (d *Dispatcher) handleAnonChatStart(ctx context.Context, chatID int64, userID string) {
	if err := d.engine.CanStartAnonChat(ctx, userID); err != nil {
		if errors.Is(err, engine.ErrInvalidState) {
			d.reply(chatID, "Enable anonymous messages in Settings first.")
			return
		}
		d.replyError(chatID, err)
		return
	}
	d.pending[userID] = pendingInput{kind: pendingAnon}
	d.reply(chatID, "Anonymous chat mode. Every message you send is relayed to a random stranger. /stop to leave.")
}

func (d *Dispatcher) handleCommentsDigest(ctx context.Context, chatID int64, userID string) {
	digest, err := d.engine.CommentsToday(ctx, userID)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if len(digest) == 0 {
		d.reply(chatID, "No comments on your posts today.")
		return
	}
	var b strings.Builder
	b.WriteString("🗨 Comments on your posts today\n")
	for _, pc := range digest {
		fmt.Fprintf(&b, "\nPost %s:\n", models.MaskID(pc.Post.ID))
		for _, c := range pc.Comments {
			fmt.Fprintf(&b, "• User %s: %s\n", models.MaskID(c.Author), c.Text)
		}
	}
	d.reply(chatID, b.String())
}

func (d *Dispatcher) handleSettings(ctx context.Context, chatID int64, userID string) {
	user, err := d.engine.EnsureUser(ctx, userID)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	reply := tgbotapi.NewMessage(chatID, "⚙️ Your settings")
	reply.ReplyMarkup = settingsKeyboard(user.AnonymousReceive, user.CommentNotifications)
	d.send(reply)
}

func (d *Dispatcher) handleAdminPanel(ctx context.Context, chatID int64, userID string) {
	admin, err := d.engine.IsAdmin(ctx, userID)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if !admin {
		d.reply(chatID, "Admins only.")
		return
	}
	reply := tgbotapi.NewMessage(chatID, "🛠 Admin panel")
	reply.ReplyMarkup = adminKeyboard()
	d.send(reply)
}

// handleFreeText routes plain text: an awaited comment or reply input, or an
// anonymous chat relay. Anything else gets a gentle nudge.
func (d *Dispatcher) handleFreeText(ctx context.Context, chatID int64, userID, text string) {
	p, ok := d.pending[userID]
	if !ok {
		d.reply(chatID, "Send a photo to share it, or use the buttons below.")
		return
	}

	switch p.kind {
	case pendingComment:
		delete(d.pending, userID)
		if _, err := d.engine.AddComment(ctx, userID, p.postID, text); err != nil {
			d.replyError(chatID, err)
			return
		}
		d.reply(chatID, "Comment added.")
	case pendingReply:
		delete(d.pending, userID)
		if err := d.engine.ReplyToComment(ctx, userID, p.postID, p.commentIndex, text); err != nil {
			d.replyError(chatID, err)
			return
		}
		d.reply(chatID, "Reply added.")
	case pendingAnon:
		if _, err := d.engine.SendAnonMessage(ctx, userID, text); err != nil {
			if errors.Is(err, engine.ErrNoPartner) {
				// Failed match drops the user back to the normal flow.
				delete(d.pending, userID)
				d.reply(chatID, "Nobody is available to chat right now. Try again later.")
				return
			}
			d.replyError(chatID, err)
			return
		}
		d.reply(chatID, "Sent. /stop to end the conversation.")
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := strconv.FormatInt(cq.From.ID, 10)
	var chatID int64
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}

	action, arg, _ := strings.Cut(cq.Data, ":")
	var ack string
	switch action {
	case "like":
		ack = d.callbackReact(ctx, userID, arg, true)
	case "dislike":
		ack = d.callbackReact(ctx, userID, arg, false)
	case "save":
		ack = d.callbackSave(ctx, userID, arg)
	case "report":
		ack = d.callbackReport(ctx, userID, arg)
	case "follow":
		ack = d.callbackFollow(ctx, userID, arg)
	case "mute":
		ack = d.callbackMute(ctx, userID, arg)
	case "comment":
		d.pending[userID] = pendingInput{kind: pendingComment, postID: arg}
		ack = "Send your comment as a message"
	case "comments":
		d.callbackListComments(ctx, chatID, arg)
	case "reply":
		ack = d.callbackReplyPrompt(userID, arg)
	case "delete":
		d.callbackDeletePrompt(chatID, arg)
	case "delete_confirm":
		ack = d.callbackDelete(ctx, userID, arg)
	case "cancel":
		ack = "Cancelled"
	case "anonreply":
		d.pending[userID] = pendingInput{kind: pendingAnon}
		ack = "Send your reply as a message"
	case "toggle":
		ack = d.callbackToggle(ctx, userID, arg)
	case "admin":
		ack = d.callbackAdmin(ctx, chatID, userID, arg)
	}

	if _, err := d.api.Request(tgbotapi.NewCallback(cq.ID, ack)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func (d *Dispatcher) callbackReact(ctx context.Context, userID, postID string, like bool) string {
	post, applied, err := d.engine.React(ctx, userID, postID, like)
	if err != nil {
		return callbackError(err)
	}
	if !applied {
		return "You already reacted to this post"
	}
	return fmt.Sprintf("👍 %d / 👎 %d", post.Likes, post.Dislikes)
}

func (d *Dispatcher) callbackSave(ctx context.Context, userID, postID string) string {
	saved, err := d.engine.SavePost(ctx, userID, postID)
	if err != nil {
		return callbackError(err)
	}
	if !saved {
		return "Already saved"
	}
	return "Saved 📌"
}

func (d *Dispatcher) callbackReport(ctx context.Context, userID, postID string) string {
	removed, err := d.engine.Report(ctx, userID, postID)
	if err != nil {
		return callbackError(err)
	}
	if removed {
		return "Post removed"
	}
	return "Report filed, thank you"
}

func (d *Dispatcher) callbackFollow(ctx context.Context, userID, targetID string) string {
	already, err := d.engine.Follow(ctx, userID, targetID)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidState) {
			return "You cannot follow yourself"
		}
		return callbackError(err)
	}
	if already {
		return "Already following"
	}
	return "Following ➕"
}

func (d *Dispatcher) callbackMute(ctx context.Context, userID, targetID string) string {
	already, err := d.engine.Mute(ctx, userID, targetID)
	if err != nil {
		return callbackError(err)
	}
	if already {
		return "Already muted"
	}
	return "Muted 🔕"
}

func (d *Dispatcher) callbackListComments(ctx context.Context, chatID int64, postID string) {
	all, err := d.engine.Comments(ctx, postID, 0)
	if err != nil {
		d.replyError(chatID, err)
		return
	}
	if len(all) == 0 {
		d.reply(chatID, "No comments yet. Be the first!")
		return
	}

	const maxShown = 10
	shown := all
	if len(shown) > maxShown {
		shown = shown[len(shown)-maxShown:]
	}
	offset := len(all) - len(shown)

	var b strings.Builder
	var rows [][]tgbotapi.InlineKeyboardButton
	fmt.Fprintf(&b, "🗨 Comments (%d total)\n\n", len(all))
	for i, c := range shown {
		fmt.Fprintf(&b, "%d. User %s: %s\n", i+1, models.MaskID(c.Author), c.Text)
		for _, r := range c.Replies {
			fmt.Fprintf(&b, "   ↳ User %s: %s\n", models.MaskID(r.Author), r.Text)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("↩️ Reply to %d", i+1),
				fmt.Sprintf("reply:%s:%d", postID, offset+i),
			),
		))
	}
	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	d.send(msg)
}

func (d *Dispatcher) callbackReplyPrompt(userID, arg string) string {
	postID, idxStr, ok := strings.Cut(arg, ":")
	if !ok {
		return "Invalid reply target"
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return "Invalid reply target"
	}
	d.pending[userID] = pendingInput{kind: pendingReply, postID: postID, commentIndex: idx}
	return "Send your reply as a message"
}

func (d *Dispatcher) callbackDeletePrompt(chatID int64, postID string) {
	msg := tgbotapi.NewMessage(chatID, "Delete this post? This cannot be undone.")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Delete", "delete_confirm:"+postID),
			tgbotapi.NewInlineKeyboardButtonData("✖ Cancel", "cancel:"),
		),
	)
	d.send(msg)
}

func (d *Dispatcher) callbackDelete(ctx context.Context, userID, postID string) string {
	if err := d.engine.DeleteOwnPost(ctx, userID, postID); err != nil {
		if errors.Is(err, engine.ErrForbidden) {
			return "Only the uploader can delete this"
		}
		return callbackError(err)
	}
	return "Post deleted"
}

func (d *Dispatcher) callbackToggle(ctx context.Context, userID, which string) string {
	switch which {
	case "anon":
		enabled, err := d.engine.ToggleAnonymousReceive(ctx, userID)
		if err != nil {
			return callbackError(err)
		}
		return "Anonymous messages: " + onOff(enabled)
	case "comments":
		enabled, err := d.engine.ToggleCommentNotifications(ctx, userID)
		if err != nil {
			return callbackError(err)
		}
		return "Comment alerts: " + onOff(enabled)
	}
	return ""
}

func (d *Dispatcher) callbackAdmin(ctx context.Context, chatID int64, userID, arg string) string {
	op, param, _ := strings.Cut(arg, ":")
	switch op {
	case "stats":
		stats, err := d.engine.Dashboard(ctx, userID)
		if err != nil {
			return callbackError(err)
		}
		d.reply(chatID, fmt.Sprintf(
			"📊 Stats\n\nUsers: %d (verified %d, banned %d)\nPosts: %d\n\nUpload limit: %d/h\nShuffle limit: %d\nReport threshold: %d\nReferral system: %s",
			stats.TotalUsers, stats.VerifiedUsers, stats.BannedUsers,
			stats.TotalPosts,
			stats.Settings.UploadLimit, stats.Settings.ShuffleLimit, stats.Settings.ReportThreshold,
			onOff(stats.Settings.ReferralSystem),
		))
		return ""
	case "reports":
		posts, err := d.engine.ReportQueue(ctx, userID, 5)
		if err != nil {
			return callbackError(err)
		}
		if len(posts) == 0 {
			return "Report queue is empty"
		}
		for _, post := range posts {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(post.FileID))
			photo.Caption = fmt.Sprintf("🚩 %d reports | uploader %s", len(post.ReportedBy), models.MaskID(post.Uploader))
			photo.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("🗑 Remove", "report:"+post.ID),
				),
			)
			d.send(photo)
		}
		return ""
	case "uploadlimit":
		delta := 1
		if param == "-1" {
			delta = -1
		}
		s, err := d.engine.AdjustUploadLimit(ctx, userID, delta)
		if err != nil {
			return callbackError(err)
		}
		return fmt.Sprintf("Upload limit: %d/h", s.UploadLimit)
	case "shufflelimit":
		delta := 1
		if param == "-1" {
			delta = -1
		}
		s, err := d.engine.AdjustShuffleLimit(ctx, userID, delta)
		if err != nil {
			return callbackError(err)
		}
		return fmt.Sprintf("Shuffle limit: %d", s.ShuffleLimit)
	case "referrals":
		s, err := d.engine.ToggleReferralSystem(ctx, userID)
		if err != nil {
			return callbackError(err)
		}
		return "Referral system: " + onOff(s.ReferralSystem)
	case "commentfeed":
		s, err := d.engine.ToggleCommentAlerts(ctx, userID)
		if err != nil {
			return callbackError(err)
		}
		return "Comment feed: " + onOff(s.CommentNotifications)
	}
	return ""
}

func (d *Dispatcher) reply(chatID int64, text string) {
	d.send(tgbotapi.NewMessage(chatID, text))
}

func (d *Dispatcher) replyError(chatID int64, err error) {
	log.Printf("dispatch error: %v", err)
	d.reply(chatID, callbackError(err))
}

func (d *Dispatcher) send(c tgbotapi.Chattable) {
	if _, err := d.api.Send(c); err != nil {
		log.Printf("send: %v", err)
	}
}

// callbackError maps engine errors to a short user-facing line.
func callbackError(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return "This post is no longer available"
	case errors.Is(err, engine.ErrForbidden):
		return "Not allowed"
	case errors.Is(err, engine.ErrInvalidState):
		return "That action is no longer valid"
	default:
		return "Something went wrong, please try again"
	}
}

func verifiedSuffix(verified bool) string {
	if verified {
		return " ✅"
	}
	return ""
}
