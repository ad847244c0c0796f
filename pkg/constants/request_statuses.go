package constants

// --- СТАТУСЫ ЗАЯВОК (совпадают со значениями enum в БД) ---
const (
	RequestStatusNew        = "New"
	RequestStatusInProgress = "In Progress"
	RequestStatusRepaired   = "Repaired"
	RequestStatusScrap      = "Scrap"
)

// --- ТИПЫ ЗАЯВОК ---
const (
	RequestTypeCorrective = "Corrective"
	RequestTypePreventive = "Preventive"
)

var RequestStatuses = []string{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusRepaired,
	RequestStatusScrap,
}

var RequestTypes = []string{
	RequestTypeCorrective,
	RequestTypePreventive,
}

// Финальные статусы
var FinalStatuses = []string{
	RequestStatusRepaired,
	RequestStatusScrap,
}

// OpenStatuses - заявки, которые ещё в работе.
var OpenStatuses = []string{
	RequestStatusNew,
	RequestStatusInProgress,
}

// allowedTransitions: переход в тот же статус проверяется отдельно.
var allowedTransitions = map[string][]string{
	RequestStatusNew:        {RequestStatusInProgress, RequestStatusScrap},
	RequestStatusInProgress: {RequestStatusRepaired, RequestStatusScrap},
}

func IsFinalStatus(code string) bool {
	return contains(FinalStatuses, code)
}

func IsValidRequestStatus(code string) bool {
	return contains(RequestStatuses, code)
}

func IsValidRequestType(code string) bool {
	return contains(RequestTypes, code)
}

// CanTransition: New -> In Progress -> Repaired, Scrap из New и In Progress.
// Повторная установка текущего статуса разрешена.
func CanTransition(from, to string) bool {
	if !IsValidRequestStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return contains(allowedTransitions[from], to)
}

func contains(list []string, code string) bool {
	for _, s := range list {
		if s == code {
			return true
		}
	}
	return false
}
