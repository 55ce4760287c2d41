package domain

// Personne is the stored account profile for a caller, keyed by the caller
// identity in the Personne collection. Owned and mutated outside this
// service; read-only here.
type Personne struct {
	ID    string `json:"id_personne"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Only callers with this role may create bookings.
const RoleUser = "user"

// Initial reservation status. Updates may overwrite it freely; no closed
// status set or transition table is enforced.
const StatutEnAttente = "en attente"
