package http

// Client-facing messages. Clients match on these strings, so they stay
// byte-for-byte as published.
const (
	msgMissingFields = "Wszystkie pola są wymagane"
	msgServerError   = "Błąd serwera"
	msgInvalidData   = "Nieprawidłowe dane"
	msgUnauthorized  = "Brak autoryzacji"

	msgNoNotes            = "Nie znaleziono notatek"
	msgNoteTitleExists    = "Dany tytuł już istnieje w bazie"
	msgNoteNotCreated     = "Notatka nie została utworzona"
	msgNoteCreated        = "Nowa notatka została utworzona"
	msgNoteNotFoundUpdate = "Nota o podanym ID nie istnieje"
	msgNoteTitleConflict  = "Istnieje już nota o podanym tytule"
	msgNoteUpdatedFmt     = "Nota %s została zaaktualizowana"
	msgNoteIDRequired     = "Id noty jest wymagane"
	msgNoteNotFoundDelete = "Nie istnieje nota o podanym ID"
	msgNoteDeletedFmt     = "Nota %s with ID %s została usunęta"
	msgNoUsers            = "Nie znaleziono użytkowników"
	msgUsernameExists     = "Użytkownik o podanym nicku juz istnieje"
	msgUserCreatedFmt     = "Nowy użytkownik %s został stworzony"
	msgUserNotFoundUpdate = "Nie znaleziono uzytkownika"
	msgUserDuplicate      = "Duplikat użytkownika"
	msgUserUpdatedFmt     = " Użytkownik %s zaaktualizowany"
	msgUserIDRequired     = "Id użytkownika jest wymagane"
	msgUserHasNotes       = "Użytkownik ma przydzielone notatki"
	msgUserNotFoundDelete = "Użytkownik nie istnieje"
	msgUserDeletedFmt     = "Użytkownik %s  on ID %s został usunięty"
)
