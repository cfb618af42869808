package domain

import (
	"golang.org/x/text/cases"
)

// foldValue case-folds a raw enum value from external records. A fresh
// caser per call because cases.Caser carries state and enum parsing
// happens on concurrent scoring paths.
func foldValue(s string) string {
	return cases.Fold().String(s)
}

// Cargo identifies the elected position a candidate is being scored for.
// The cargo selects the experience-relevance weighting row; it never
// changes integrity, transparency, or confidence scoring.
type Cargo string

// Supported cargos. The set is closed: scoring for an unknown cargo is
// rejected at the engine boundary rather than silently defaulted.
const (
	CargoPresidente       Cargo = "presidente"
	CargoVicepresidente   Cargo = "vicepresidente"
	CargoSenador          Cargo = "senador"
	CargoDiputado         Cargo = "diputado"
	CargoParlamentoAndino Cargo = "parlamento_andino"
)

// Cargos lists every valid cargo in declaration order.
func Cargos() []Cargo {
	return []Cargo{
		CargoPresidente,
		CargoVicepresidente,
		CargoSenador,
		CargoDiputado,
		CargoParlamentoAndino,
	}
}

// Valid reports whether the cargo is a member of the closed set.
func (c Cargo) Valid() bool {
	switch c {
	case CargoPresidente, CargoVicepresidente, CargoSenador, CargoDiputado, CargoParlamentoAndino:
		return true
	}
	return false
}

// ParseCargo normalizes a raw cargo string (case-folded) into a Cargo.
// Returns an InvalidEnumError with a nearest-match suggestion when the
// value is outside the closed set.
func ParseCargo(s string) (Cargo, error) {
	c := Cargo(foldValue(s))
	if !c.Valid() {
		return "", newInvalidEnumError("cargo", s, cargoStrings())
	}
	return c, nil
}

func cargoStrings() []string {
	cs := Cargos()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// EducationLevel is the highest academic attainment recorded for a
// single education record. Levels order from sin_informacion (no data)
// through doctorado.
type EducationLevel string

// Supported education levels.
const (
	EducationSinInformacion EducationLevel = "sin_informacion"
	EducationPrimaria       EducationLevel = "primaria"
	EducationSecundaria     EducationLevel = "secundaria"
	EducationTecnico        EducationLevel = "tecnico"
	EducationUniversitario  EducationLevel = "universitario"
	EducationTitulo         EducationLevel = "titulo"
	EducationMaestria       EducationLevel = "maestria"
	EducationDoctorado      EducationLevel = "doctorado"
)

// EducationLevels lists every valid level in ascending order of attainment.
func EducationLevels() []EducationLevel {
	return []EducationLevel{
		EducationSinInformacion,
		EducationPrimaria,
		EducationSecundaria,
		EducationTecnico,
		EducationUniversitario,
		EducationTitulo,
		EducationMaestria,
		EducationDoctorado,
	}
}

// Valid reports whether the level is a member of the closed set.
func (l EducationLevel) Valid() bool {
	switch l {
	case EducationSinInformacion, EducationPrimaria, EducationSecundaria,
		EducationTecnico, EducationUniversitario, EducationTitulo,
		EducationMaestria, EducationDoctorado:
		return true
	}
	return false
}

// RoleType classifies an experience record by the nature of the position
// held. The relevance-per-year weighting depends on both the role type
// and the target cargo.
type RoleType string

// Supported role types.
const (
	RoleElectivoAlto          RoleType = "electivo_alto"
	RoleElectivoMedio         RoleType = "electivo_medio"
	RoleEjecutivoPublicoAlto  RoleType = "ejecutivo_publico_alto"
	RoleEjecutivoPublicoMedio RoleType = "ejecutivo_publico_medio"
	RoleEjecutivoPrivadoAlto  RoleType = "ejecutivo_privado_alto"
	RoleEjecutivoPrivadoMedio RoleType = "ejecutivo_privado_medio"
	RoleTecnicoProfesional    RoleType = "tecnico_profesional"
	RoleAcademia              RoleType = "academia"
	RoleInternacional         RoleType = "internacional"
	RolePartidario            RoleType = "partidario"
)

// RoleTypes lists every valid role type in declaration order.
func RoleTypes() []RoleType {
	return []RoleType{
		RoleElectivoAlto,
		RoleElectivoMedio,
		RoleEjecutivoPublicoAlto,
		RoleEjecutivoPublicoMedio,
		RoleEjecutivoPrivadoAlto,
		RoleEjecutivoPrivadoMedio,
		RoleTecnicoProfesional,
		RoleAcademia,
		RoleInternacional,
		RolePartidario,
	}
}

// Valid reports whether the role type is a member of the closed set.
func (r RoleType) Valid() bool {
	switch r {
	case RoleElectivoAlto, RoleElectivoMedio,
		RoleEjecutivoPublicoAlto, RoleEjecutivoPublicoMedio,
		RoleEjecutivoPrivadoAlto, RoleEjecutivoPrivadoMedio,
		RoleTecnicoProfesional, RoleAcademia, RoleInternacional, RolePartidario:
		return true
	}
	return false
}

// SeniorityLevel classifies the management tier of a leadership-tagged
// experience record.
type SeniorityLevel string

// Supported seniority levels, ascending.
const (
	SeniorityIndividualContributor SeniorityLevel = "individual_contributor"
	SeniorityCoordinacion          SeniorityLevel = "coordinacion"
	SeniorityJefatura              SeniorityLevel = "jefatura"
	SeniorityGerencia              SeniorityLevel = "gerencia"
	SeniorityDireccion             SeniorityLevel = "direccion"
)

// SeniorityLevels lists every valid seniority level in ascending order.
func SeniorityLevels() []SeniorityLevel {
	return []SeniorityLevel{
		SeniorityIndividualContributor,
		SeniorityCoordinacion,
		SeniorityJefatura,
		SeniorityGerencia,
		SeniorityDireccion,
	}
}

// Valid reports whether the seniority level is a member of the closed set.
func (s SeniorityLevel) Valid() bool {
	switch s {
	case SeniorityIndividualContributor, SeniorityCoordinacion,
		SeniorityJefatura, SeniorityGerencia, SeniorityDireccion:
		return true
	}
	return false
}

// CivilSentenceType classifies a civil judgment. Each type carries its
// own base penalty and individual cap.
type CivilSentenceType string

// Supported civil sentence types.
const (
	CivilViolencia   CivilSentenceType = "violencia"
	CivilAlimentos   CivilSentenceType = "alimentos"
	CivilLaboral     CivilSentenceType = "laboral"
	CivilContractual CivilSentenceType = "contractual"
)

// CivilSentenceTypes lists every valid civil sentence type.
func CivilSentenceTypes() []CivilSentenceType {
	return []CivilSentenceType{CivilViolencia, CivilAlimentos, CivilLaboral, CivilContractual}
}

// Valid reports whether the type is a member of the closed set.
func (t CivilSentenceType) Valid() bool {
	switch t {
	case CivilViolencia, CivilAlimentos, CivilLaboral, CivilContractual:
		return true
	}
	return false
}

// TaxCondition is the SUNAT taxpayer-locatability condition.
// no_habido and no_hallado are mutually exclusive findings.
type TaxCondition string

// Supported tax conditions.
const (
	TaxConditionHabido    TaxCondition = "habido"
	TaxConditionNoHabido  TaxCondition = "no_habido"
	TaxConditionNoHallado TaxCondition = "no_hallado"
)

// Valid reports whether the condition is a member of the closed set.
func (c TaxCondition) Valid() bool {
	switch c {
	case TaxConditionHabido, TaxConditionNoHabido, TaxConditionNoHallado:
		return true
	}
	return false
}

// TaxStatus is the SUNAT registration status of the taxpayer.
type TaxStatus string

// Supported tax statuses.
const (
	TaxStatusActivo     TaxStatus = "activo"
	TaxStatusSuspendido TaxStatus = "suspendido"
	TaxStatusBaja       TaxStatus = "baja"
)

// Valid reports whether the status is a member of the closed set.
func (s TaxStatus) Valid() bool {
	switch s {
	case TaxStatusActivo, TaxStatusSuspendido, TaxStatusBaja:
		return true
	}
	return false
}

// DiscrepancySeverity grades the gap between a candidate's declared
// judicial history and records found in court registries.
type DiscrepancySeverity string

// Supported discrepancy severities.
const (
	DiscrepancyNone     DiscrepancySeverity = "none"
	DiscrepancyMinor    DiscrepancySeverity = "minor"
	DiscrepancyMajor    DiscrepancySeverity = "major"
	DiscrepancyCritical DiscrepancySeverity = "critical"
)

// Valid reports whether the severity is a member of the closed set.
func (s DiscrepancySeverity) Valid() bool {
	switch s {
	case DiscrepancyNone, DiscrepancyMinor, DiscrepancyMajor, DiscrepancyCritical:
		return true
	}
	return false
}
