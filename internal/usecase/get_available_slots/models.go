package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Settings рабочий день и длительность слота по умолчанию
type Settings struct {
	DayStartHour           int
	DayEndHour             int
	DefaultDurationMinutes int
}

// Request модель запроса на получение слотов
type Request struct {
	UserID          string             // ID пользователя (auth)
	Date            time.Time          // Дата (без времени)
	StartTimes      []types.TimeString // Кандидаты, пустой список - каждый час рабочего дня
	DurationMinutes int                // Длительность, 0 - по умолчанию
	ExcludeID       *int64             // Запись, которую не учитывать (редактирование)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность слота в минутах
	Slots           []Slot    // Слоты в порядке кандидатов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Available bool             // Нет пересечений с активными записями
}
