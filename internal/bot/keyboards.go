package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reply keyboard labels. The labels double as message routing keys, so they
// must stay in sync with handleMessage.
const (
	btnShuffle  = "🔀 Shuffle"
	btnProfile  = "👤 Profile"
	btnTop      = "🏆 Leaderboard"
	btnTrending = "🔥 Trending"
	btnSaved    = "📌 Saved"
	btnAnonChat = "💬 Anon Chat"
	btnSettings = "⚙️ Settings"
	btnAdmin    = "🛠 Admin"
	btnComments = "🗨 My Comments"
)

func mainKeyboard(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnShuffle),
			tgbotapi.NewKeyboardButton(btnProfile),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTop),
			tgbotapi.NewKeyboardButton(btnTrending),
			tgbotapi.NewKeyboardButton(btnSaved),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAnonChat),
			tgbotapi.NewKeyboardButton(btnComments),
			tgbotapi.NewKeyboardButton(btnSettings),
		),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnAdmin)))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// postActionsKeyboard is attached to every served or fanned-out post.
func postActionsKeyboard(postID, uploaderID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👍", "like:"+postID),
			tgbotapi.NewInlineKeyboardButtonData("👎", "dislike:"+postID),
			tgbotapi.NewInlineKeyboardButtonData("📌", "save:"+postID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Comment", "comment:"+postID),
			tgbotapi.NewInlineKeyboardButtonData("🗨 View", "comments:"+postID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Follow", "follow:"+uploaderID),
			tgbotapi.NewInlineKeyboardButtonData("🔕 Mute", "mute:"+uploaderID),
			tgbotapi.NewInlineKeyboardButtonData("🚩 Report", "report:"+postID),
		),
	)
}

func anonReplyKeyboard(senderID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Reply", "anonreply:"+senderID),
		),
	)
}

func ownPostKeyboard(postID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", "delete:"+postID),
			tgbotapi.NewInlineKeyboardButtonData("🗨 View Comments", "comments:"+postID),
		),
	)
}

func settingsKeyboard(anonReceive, commentAlerts bool) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Anonymous messages: "+onOff(anonReceive), "toggle:anon"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Comment alerts: "+onOff(commentAlerts), "toggle:comments"),
		),
	)
}

func adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", "admin:stats"),
			tgbotapi.NewInlineKeyboardButtonData("🚩 Reports", "admin:reports"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Upload limit -", "admin:uploadlimit:-1"),
			tgbotapi.NewInlineKeyboardButtonData("Upload limit +", "admin:uploadlimit:+1"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Shuffle limit -", "admin:shufflelimit:-1"),
			tgbotapi.NewInlineKeyboardButtonData("Shuffle limit +", "admin:shufflelimit:+1"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Referral system on/off", "admin:referrals"),
			tgbotapi.NewInlineKeyboardButtonData("Comment feed on/off", "admin:commentfeed"),
		),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
