package handler

import (
	"fmt"
	"strings"

	"hoopmania/internal/domain"
)

// maxMessageLen is the Telegram message size limit; longer admin listings
// are split into chunks.
const maxMessageLen = 4096

const (
	accessDeniedPanel   = "❌ У вас немає доступу до адмін панелі!"
	accessDeniedCommand = "❌ У вас немає доступу до цієї команди!"
	unrecognizedMessage = "❓ Не зрозумів ваше повідомлення. Повертаюся на головну."
	draftMissingMessage = "❌ Помилка: спочатку створіть замовлення"
	incompleteMessage   = "❌ Помилка: не всі дані замовлення заповнені"
	adminPanelMessage   = "🔧 Адмін панель\n\nОберіть дію:"
	broadcastMenuText   = "📢 Розсилка\n\nОберіть тип розсилки:"
)

func (h *Handler) welcomeMessage() string {
	return fmt.Sprintf("🎉 Вітаємо у %s! 🎉\n\n%s\n\nОберіть, що вас цікавить:",
		h.cfg.Shop.Name, h.cfg.Shop.Description)
}

// orderPrompt asks for order details after the order type was chosen
func orderPrompt(orderType domain.OrderType) string {
	var b strings.Builder
	b.WriteString("📝 Введіть деталі вашого замовлення:\n\n")
	if orderType == domain.OrderTypeInStock {
		b.WriteString("🏀 Що саме вас цікавить з наявності?\n")
	} else {
		b.WriteString("📋 Що саме ви хочете замовити?\n")
	}
	b.WriteString("\n💡 Можете прикріпити фото товару для кращого розуміння!")
	return b.String()
}

// paymentChosen echoes the selected payment method
func paymentChosen(method domain.PaymentMethod) string {
	if method == domain.PaymentCashOnDelivery {
		return "💳 Оберіть спосіб оплати:\n\n💵 Накладний платіж - оплата при отриманні"
	}
	return "💳 Оберіть спосіб оплати:\n\n💳 Передплата - оплата заздалегідь"
}

// orderSummary renders the draft for final confirmation
func orderSummary(draft *domain.Draft) string {
	return fmt.Sprintf(`📋 Деталі вашого замовлення:

🏀 Тип: %s
💳 Спосіб оплати: %s
📍 Адреса: %s
📝 Деталі: %s

✅ Все правильно? Підтвердіть замовлення:`,
		draft.OrderType.Label(),
		draft.Payment.Label(),
		draft.Address,
		draft.Details,
	)
}

// orderConfirmation renders the committed order for the buyer
func orderConfirmation(order *domain.Order) string {
	return fmt.Sprintf(`✅ Ваше замовлення підтверджено!

🆔 Номер замовлення: %s
📦 Тип: %s
💳 Спосіб оплати: %s
📍 Адреса: %s
📝 Деталі: %s

🎉 Дякуємо за замовлення! Ми зв'яжемося з вами найближчим часом.`,
		order.ID,
		order.Data.OrderType.Label(),
		order.Data.Payment.Label(),
		order.Data.Address,
		order.Data.Details,
	)
}

// recentOrdersText renders the admin order listing
func recentOrdersText(orders []*domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Останні %d замовлень:\n\n", len(orders))

	for _, order := range orders {
		fmt.Fprintf(&b, `🆔 %s
👤 %s (@%s)
📅 %s
📦 %s
💳 %s
📍 %s
📝 %s
🔗 ID користувача: %d
`,
			order.ID,
			order.FirstName,
			order.Username,
			order.CreatedDate.Format("2006-01-02"),
			order.Data.OrderType.Label(),
			order.Data.Payment.Label(),
			order.Data.Address,
			order.Data.Details,
			order.UserID,
		)
		b.WriteString("\n" + strings.Repeat("─", 50) + "\n")
	}

	b.WriteString("\n💬 Для відправки повідомлення замовнику використовуйте:\n")
	b.WriteString("/message НОМЕР_ЗАМОВЛЕННЯ ТЕКСТ_ПОВІДОМЛЕННЯ")
	return b.String()
}

// usersListText renders the admin user listing
func usersListText(users []domain.UserSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👥 Всього користувачів: %d\n\n", len(users))

	for _, user := range users {
		fmt.Fprintf(&b, `👤 %s (@%s)
🆔 ID: %d
📅 Дата реєстрації: %s
📦 Замовлень: %d
`,
			user.FirstName,
			user.Username,
			user.UserID,
			user.JoinedDate.Format("2006-01-02"),
			user.OrderCount,
		)
		b.WriteString("\n" + strings.Repeat("─", 30) + "\n")
	}
	return b.String()
}

// statsText renders runtime statistics for admins
func statsText(s domain.StatsSnapshot) string {
	return fmt.Sprintf(`📊 Статистика бота:

⏰ Час роботи: %.1f годин
👥 Всього користувачів: %d
📦 Всього замовлень: %d
❌ Помилок: %d
🔄 Статус: Активний`,
		s.UptimeHours,
		s.TotalUsers,
		s.TotalOrders,
		s.Errors,
	)
}

// broadcastPreview asks the admin to confirm the broadcast text
func broadcastPreview(text string) string {
	return fmt.Sprintf("📢 Текст для розсилки:\n\n%s\n\n✅ Все правильно? Відправляємо?", text)
}

// broadcastResult renders broadcast delivery counters
func broadcastResult(sent, failed int) string {
	return fmt.Sprintf(`✅ Розсилка завершена!

📊 Результат:
✅ Успішно відправлено: %d
❌ Помилки: %d

📢 Повідомлення відправлено всім користувачам`, sent, failed)
}

// chunkText splits s into rune-safe pieces no longer than limit
func chunkText(s string, limit int) []string {
	if limit <= 0 || len(s) == 0 {
		return []string{s}
	}

	runes := []rune(s)
	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(chunks, string(runes))
}
