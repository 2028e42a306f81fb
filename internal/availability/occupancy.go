package availability

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// FilterOccupied убирает слоты, время которых совпадает с активным бронированием ресурса на эту дату.
// Сравнение - точное совпадение нормализованного HH:MM, без учёта длительности.
// Повторное применение с тем же набором ничего не меняет.
func FilterOccupied(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	occupied := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		occupied[normalize(b)] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if _, ok := occupied[normalize(s)]; ok {
			continue
		}
		free = append(free, s)
	}
	return free
}

// Contains true, если t есть среди слотов
func Contains(slots []types.TimeString, t types.TimeString) bool {
	t = normalize(t)
	for _, s := range slots {
		if normalize(s) == t {
			return true
		}
	}
	return false
}
