package poller

import (
	"errors"

	"github.com/shenikar/zasahy_monitor/internal/source"
)

// FetchErrorMessage сводит любую ошибку загрузки к одному сообщению для пользователя
func FetchErrorMessage(err error) string {
	detail := "neznámá chyba"
	switch {
	case errors.Is(err, source.ErrNetwork):
		detail = "server je nedostupný"
	case errors.Is(err, source.ErrShape):
		detail = "server vrátil neplatná data"
	case errors.Is(err, source.ErrParse):
		detail = "neplatné datum v datech"
	}
	return "Nepodařilo se načíst výjezdy: " + detail
}
