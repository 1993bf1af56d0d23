// Package telegram provides Telegram Bot API integration for sending rain
// state notifications.
//
// The package sends messages via the Bot API sendMessage endpoint using
// simple HTTP requests. No external dependencies required - uses only the
// standard library.
//
// Authentication requires a bot token (from @BotFather) and chat ID,
// supplied via the TG_TOKEN and TG_CHAT environment variables or flags.
package telegram
