package handler

import tele "gopkg.in/telebot.v3"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnInStock),
		menu.Row(btnPreOrder),
	)
	return menu
}

// paymentMarkup returns the payment method keyboard
func paymentMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnCashOnDelivery),
		menu.Row(btnPrepayment),
		menu.Row(btnBackToMain),
	)
	return menu
}

// confirmMarkup returns the order confirmation keyboard
func confirmMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnConfirmOrder),
		menu.Row(btnBackToMain),
	)
	return menu
}

// adminMarkup returns the admin panel keyboard
func adminMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdminBroadcast),
		menu.Row(btnViewOrders),
		menu.Row(btnAdminStats),
		menu.Row(btnBackToMain),
	)
	return menu
}

// broadcastTypeMarkup returns the broadcast type selection keyboard
func broadcastTypeMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnBroadcastText),
		menu.Row(btnBroadcastPhoto),
		menu.Row(btnAdminPanel),
	)
	return menu
}

// broadcastConfirmMarkup returns the broadcast confirmation keyboard
func broadcastConfirmMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnConfirmBroadcast),
		menu.Row(btnChangeBroadcast),
	)
	return menu
}

// backMarkup returns a keyboard with a single back-to-main button
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnBackToMain))
	return menu
}
