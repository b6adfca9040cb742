package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Emax-dev/Bot/internal/domain"
)

// ErrAlreadyRunning возвращается на повторный /start: трекаемое сообщение
// одно, второй таймер нам не нужен.
var ErrAlreadyRunning = errors.New("price updates already running")

// Курс-заглушка на случай недоступности стакана.
var fallbackUSDTRate = decimal.NewFromInt(50000)

const placeholderText = "Starting price updates..."

// Updater - сессия обновления одного сообщения в канале.
// Состояние (messageID) пишется один раз при старте под замком,
// дальше тики его только читают.
type Updater struct {
	quotes    domain.QuoteSource
	book      domain.RateSource
	messenger domain.Messenger
	logger    *slog.Logger

	dest     string
	interval time.Duration
	showTime bool
	loc      *time.Location

	mu        sync.Mutex
	running   bool
	messageID int
}

func NewUpdater(
	quotes domain.QuoteSource,
	book domain.RateSource,
	messenger domain.Messenger,
	dest string,
	interval time.Duration,
	showTime bool,
	loc *time.Location,
	logger *slog.Logger,
) *Updater {
	return &Updater{
		quotes:    quotes,
		book:      book,
		messenger: messenger,
		dest:      dest,
		interval:  interval,
		showTime:  showTime,
		loc:       loc,
		logger:    logger,
	}
}

// Start выполняет bootstrap сессии: проверка доступа к каналу, отправка
// сообщения-заготовки, запуск цикла. Гонку двух /start решает guard:
// второй вызов получает ErrAlreadyRunning и ничего не отправляет.
func (u *Updater) Start(ctx context.Context) error {
	u.mu.Lock()
	if u.running {
		u.mu.Unlock()
		return ErrAlreadyRunning
	}
	u.running = true
	u.mu.Unlock()

	if err := u.messenger.VerifyDestination(u.dest); err != nil {
		u.reset()
		return fmt.Errorf("verify destination %s: %w", u.dest, err)
	}

	messageID, err := u.messenger.SendText(u.dest, placeholderText)
	if err != nil {
		u.reset()
		return fmt.Errorf("send initial message: %w", err)
	}

	u.mu.Lock()
	u.messageID = messageID
	u.mu.Unlock()

	u.logger.Info("price updates armed",
		slog.Int("message_id", messageID),
		slog.Duration("interval", u.interval))

	go u.loop(ctx)
	return nil
}

// Tick - один цикл обновления: котировки -> курс -> рендер -> edit.
// Ошибка котировок или edit возвращается наверх (цикл ее логирует,
// сообщение в канале остается прежним). Ошибка стакана гасится fallback-ом.
func (u *Updater) Tick(ctx context.Context) error {
	messageID, ok := u.TrackedMessage()
	if !ok {
		u.logger.Debug("no tracked message yet, skipping tick")
		return nil
	}

	quotes, err := u.quotes.Quotes(ctx)
	if err != nil {
		return fmt.Errorf("fetch quotes: %w", err)
	}

	snapshot := domain.Snapshot{
		Quotes:   quotes,
		USDTRate: u.usdtRate(ctx),
		At:       time.Now(),
	}

	text := FormatSnapshot(snapshot, u.showTime, u.loc)

	if err := u.messenger.EditText(u.dest, messageID, text); err != nil {
		return fmt.Errorf("edit message %d: %w", messageID, err)
	}

	u.logger.Debug("message updated", slog.Int("message_id", messageID))
	return nil
}

// TrackedMessage возвращает id трекаемого сообщения, если сессия запущена.
func (u *Updater) TrackedMessage() (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.messageID, u.messageID != 0
}

func (u *Updater) Interval() time.Duration {
	return u.interval
}

// --- Private Helpers ---

// Единственный путь первичного обновления - немедленный первый тик цикла.
// Отдельного синхронного вызова после Start нет, иначе получаем двойной edit.
func (u *Updater) loop(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			u.logger.Info("update loop stopped")
			return
		default:
		}

		u.runTick(ctx)

		select {
		case <-ctx.Done():
			u.logger.Info("update loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// runTick изолирует тик: ни ошибка, ни паника не убивают таймер.
func (u *Updater) runTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("tick panicked", slog.Any("panic", r))
		}
	}()

	if err := u.Tick(ctx); err != nil {
		u.logger.Error("tick failed", slog.String("error", err.Error()))
	}
}

func (u *Updater) usdtRate(ctx context.Context) decimal.Decimal {
	rate, err := u.book.BestRate(ctx)
	if err != nil {
		u.logger.Error("usdt rate unavailable, using fallback",
			slog.String("error", err.Error()),
			slog.String("fallback", fallbackUSDTRate.String()))
		return fallbackUSDTRate
	}
	return rate
}

func (u *Updater) reset() {
	u.mu.Lock()
	u.running = false
	u.mu.Unlock()
}
