package payment

import (
	"fmt"

	"github.com/grandpalace/booking/internal/logger"
)

// Method is the capability a reservation needs from a payment instrument.
// Implementations simulate processing: they gate on availability and then
// succeed unconditionally, so the payment flow stays deterministic.
type Method interface {
	Pay(amount float64) bool
	Available() bool
	Name() string
}

type Card struct {
	l         *logger.Logger
	number    string
	holder    string
	available bool
}

func NewCard(l *logger.Logger, number, holder string) *Card {
	return &Card{
		l:         l,
		number:    number,
		holder:    holder,
		available: true,
	}
}

func (c *Card) Pay(amount float64) bool {
	if !c.available {
		c.l.LogWarnf("Credit card is not available")

		return false
	}

	c.l.LogInfo("Processing payment of %.2f with credit card ending %s, holder %s", amount, lastDigits(c.number), c.holder)

	return true
}

func (c *Card) Available() bool {
	return c.available
}

func (c *Card) Name() string {
	return "Credit Card"
}

func (c *Card) SetAvailable(available bool) {
	c.available = available
}

type BankTransfer struct {
	l         *logger.Logger
	account   string
	bank      string
	available bool
}

func NewBankTransfer(l *logger.Logger, account, bank string) *BankTransfer {
	return &BankTransfer{
		l:         l,
		account:   account,
		bank:      bank,
		available: true,
	}
}

func (b *BankTransfer) Pay(amount float64) bool {
	if !b.available {
		b.l.LogWarnf("Bank transfer is not available")

		return false
	}

	b.l.LogInfo("Processing bank transfer of %.2f, bank %s, account %s", amount, b.bank, b.account)

	return true
}

func (b *BankTransfer) Available() bool {
	return b.available
}

func (b *BankTransfer) Name() string {
	return "Bank Transfer"
}

func (b *BankTransfer) SetAvailable(available bool) {
	b.available = available
}

type Crypto struct {
	l         *logger.Logger
	currency  string
	wallet    string
	available bool
}

func NewCrypto(l *logger.Logger, currency, wallet string) *Crypto {
	return &Crypto{
		l:         l,
		currency:  currency,
		wallet:    wallet,
		available: true,
	}
}

func (c *Crypto) Pay(amount float64) bool {
	if !c.available {
		c.l.LogWarnf("Crypto payment is not available")

		return false
	}

	c.l.LogInfo("Processing payment of %.2f with %s, wallet %s", amount, c.currency, c.wallet)

	return true
}

func (c *Crypto) Available() bool {
	return c.available
}

func (c *Crypto) Name() string {
	return fmt.Sprintf("Crypto (%s)", c.currency)
}

func (c *Crypto) SetAvailable(available bool) {
	c.available = available
}

func lastDigits(number string) string {
	const visible = 4

	if len(number) <= visible {
		return number
	}

	return number[len(number)-visible:]
}
