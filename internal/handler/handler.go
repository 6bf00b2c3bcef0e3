package handler

import (
	"hoopmania/internal/config"
	"hoopmania/internal/domain"
	"hoopmania/internal/repository"
	"hoopmania/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	cfg         *config.Config
	store       repository.Store
	orders      *service.OrderService
	broadcaster *service.Broadcaster
	notifier    *service.Notifier
	stats       *service.Stats
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cfg *config.Config,
	store repository.Store,
	orders *service.OrderService,
	broadcaster *service.Broadcaster,
	notifier *service.Notifier,
	stats *service.Stats,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		cfg:         cfg,
		store:       store,
		orders:      orders,
		broadcaster: broadcaster,
		notifier:    notifier,
		stats:       stats,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdminCommand)
	h.bot.Handle("/message", h.handleMessageCommand)
	h.bot.Handle("/broadcast", h.handleBroadcastCommand)
	h.bot.Handle("/view_users", h.handleViewUsersCommand)
	h.bot.Handle("/stats", h.handleStatsCommand)
	h.bot.Handle("/ping", h.handlePing)

	// Messages
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Order flow buttons
	h.bot.Handle(&btnInStock, func(c tele.Context) error {
		return h.handleOrderType(c, domain.OrderTypeInStock)
	})
	h.bot.Handle(&btnPreOrder, func(c tele.Context) error {
		return h.handleOrderType(c, domain.OrderTypePreOrder)
	})
	h.bot.Handle(&btnCashOnDelivery, func(c tele.Context) error {
		return h.handlePayment(c, domain.PaymentCashOnDelivery)
	})
	h.bot.Handle(&btnPrepayment, func(c tele.Context) error {
		return h.handlePayment(c, domain.PaymentPrepayment)
	})
	h.bot.Handle(&btnConfirmOrder, h.handleConfirmOrder)
	h.bot.Handle(&btnBackToMain, h.handleBackToMain)

	// Admin buttons
	h.bot.Handle(&btnAdminPanel, h.handleAdminPanel)
	h.bot.Handle(&btnAdminBroadcast, h.handleAdminBroadcast)
	h.bot.Handle(&btnBroadcastText, h.handleBroadcastTextOnly)
	h.bot.Handle(&btnBroadcastPhoto, h.handleBroadcastPhotoText)
	h.bot.Handle(&btnConfirmBroadcast, h.handleConfirmBroadcast)
	h.bot.Handle(&btnChangeBroadcast, h.handleChangeBroadcast)
	h.bot.Handle(&btnViewOrders, h.handleAdminViewOrders)
	h.bot.Handle(&btnAdminStats, h.handleAdminStats)

	// Generic callback handler for anything that slipped past the buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnInStock = tele.Btn{
		Unique: "in_stock",
		Text:   "📦 В наявності",
	}
	btnPreOrder = tele.Btn{
		Unique: "pre_order",
		Text:   "📋 Під замовлення",
	}
	btnCashOnDelivery = tele.Btn{
		Unique: "cash_on_delivery",
		Text:   "💵 Накладний платіж",
	}
	btnPrepayment = tele.Btn{
		Unique: "prepayment",
		Text:   "💳 Передплата",
	}
	btnConfirmOrder = tele.Btn{
		Unique: "confirm_order",
		Text:   "✅ Підтвердити замовлення",
	}
	btnBackToMain = tele.Btn{
		Unique: "back_to_main",
		Text:   "🔙 На головну",
	}
	btnAdminPanel = tele.Btn{
		Unique: "admin_panel",
		Text:   "🔙 Назад",
	}
	btnAdminBroadcast = tele.Btn{
		Unique: "admin_broadcast",
		Text:   "📢 Розсилка",
	}
	btnBroadcastText = tele.Btn{
		Unique: "broadcast_text_only",
		Text:   "📝 Тільки текст",
	}
	btnBroadcastPhoto = tele.Btn{
		Unique: "broadcast_photo_text",
		Text:   "📸 Фото з текстом",
	}
	btnConfirmBroadcast = tele.Btn{
		Unique: "confirm_broadcast",
		Text:   "✅ Так, відправити",
	}
	btnChangeBroadcast = tele.Btn{
		Unique: "change_broadcast",
		Text:   "❌ Ні, змінити",
	}
	btnViewOrders = tele.Btn{
		Unique: "admin_view_orders",
		Text:   "📋 Переглянути замовлення",
	}
	btnAdminStats = tele.Btn{
		Unique: "admin_stats",
		Text:   "📊 Статистика",
	}
)
