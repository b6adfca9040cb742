package usecase

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Emax-dev/Bot/internal/domain"
)

// Печатаем через x/text: группировка разрядов ("65,000.00") как в английской локали.
var printer = message.NewPrinter(language.English)

// FormatSnapshot - чистая функция рендера снапшота в текст сообщения.
// USD с двумя знаками, риал без дробной части. Время считаем всегда,
// но строку с ним добавляем только по флагу showTime.
func FormatSnapshot(s domain.Snapshot, showTime bool, loc *time.Location) string {
	btc, _ := s.Quotes.Bitcoin.Float64()
	eth, _ := s.Quotes.Ethereum.Float64()
	sol, _ := s.Quotes.Solana.Float64()
	irr, _ := s.USDTRate.Float64()

	var sb strings.Builder
	printer.Fprintf(&sb, "💰 Bitcoin (BTC): $%.2f\n", btc)
	printer.Fprintf(&sb, "💎 Ethereum (ETH): $%.2f\n", eth)
	printer.Fprintf(&sb, "✨ Solana (SOL): $%.2f\n", sol)
	printer.Fprintf(&sb, "💵 Tether (USDT): %.0f ریال", irr)

	if showTime {
		sb.WriteString("\n🕐 " + s.At.In(loc).Format("2006-01-02 15:04:05"))
	}

	return sb.String()
}
