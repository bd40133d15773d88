package models

// TipoEstabelecimento enumerates the kinds of health facility
type TipoEstabelecimento string

const (
	TipoPosto    TipoEstabelecimento = "POSTO"
	TipoHospital TipoEstabelecimento = "HOSPITAL"
	TipoUPA      TipoEstabelecimento = "UPA"
	TipoOutro    TipoEstabelecimento = "OUTRO"
)

// TipoEstabelecimentoValido reports whether tipo is one of the four accepted values.
func TipoEstabelecimentoValido(tipo string) bool {
	switch TipoEstabelecimento(tipo) {
	case TipoPosto, TipoHospital, TipoUPA, TipoOutro:
		return true
	}
	return false
}

// Estabelecimento represents a health facility identified by its CNES code
type Estabelecimento struct {
	BaseModel
	Nome                 string              `gorm:"size:100;not null" json:"nome"`
	Tipo                 TipoEstabelecimento `gorm:"size:50;not null" json:"tipo"`
	CNES                 string              `gorm:"size:20;uniqueIndex;not null" json:"cnes"`
	Endereco             string              `gorm:"size:200;not null" json:"endereco"`
	Telefone             string              `gorm:"size:20" json:"telefone,omitempty"`
	Email                string              `gorm:"size:100" json:"email,omitempty"`
	HorarioFuncionamento string              `gorm:"size:100" json:"horario_funcionamento,omitempty"`
}

// TableName overrides the default pluralization
func (Estabelecimento) TableName() string {
	return "estabelecimentos"
}
