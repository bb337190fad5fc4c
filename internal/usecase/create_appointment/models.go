package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID      string           // ID пользователя (auth)
	ClientID    *int64           // ID клиента (опционально)
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала "HH:MM"
	EndTime     types.TimeString // Время окончания "HH:MM"
	Title       string           // Заголовок
	Description *string          // Описание (опционально)
	Color       string           // Цвет "#rrggbb", пустой - цвет по умолчанию
}
