package models

import (
	"time"
)

// CarteiraVacinacao is one vaccination event: who applied which vaccine to
// whom, where and when. Rows are immutable once written; corrections happen
// out-of-band. The composite unique index is the authoritative guard against
// registering the same dose of the same vaccine twice for one patient.
type CarteiraVacinacao struct {
	RegistroBase
	PacienteID        string    `gorm:"size:36;not null;index;uniqueIndex:idx_dose_unica" json:"paciente_id"`
	VacinaID          string    `gorm:"size:36;not null;index;uniqueIndex:idx_dose_unica" json:"vacina_id"`
	FuncionarioID     string    `gorm:"size:36;not null" json:"funcionario_id"`
	EstabelecimentoID string    `gorm:"size:36;not null;index" json:"estabelecimento_id"`
	DataAplicacao     time.Time `gorm:"not null" json:"data_aplicacao"`
	Dose              string    `gorm:"size:20;not null;uniqueIndex:idx_dose_unica" json:"dose"`
	Observacoes       string    `gorm:"type:text" json:"observacoes,omitempty"`
}

// TableName matches the original singular table name
func (CarteiraVacinacao) TableName() string {
	return "carteira_vacinacao"
}

// CarteiraVacinacaoCompleta is the denormalized projection of a vaccination
// record with the names of every referenced entity inlined, so clients never
// need follow-up lookups.
type CarteiraVacinacaoCompleta struct {
	CarteiraVacinacao
	NomePaciente        string `json:"nome_paciente"`
	NomeVacina          string `json:"nome_vacina"`
	NomeEstabelecimento string `json:"nome_estabelecimento"`
	TipoEstabelecimento string `json:"tipo_estabelecimento"`
	NomeFuncionario     string `json:"nome_funcionario"`
}

// CarteiraPaciente is the full vaccination card of one patient, most recent
// application first.
type CarteiraPaciente struct {
	Paciente   Paciente                    `json:"paciente"`
	Vacinacoes []CarteiraVacinacaoCompleta `json:"vacinacoes"`
}
