// Package entity defines the core business entities for the domain layer.
package entity

// Category identifies a transaction category. The set of valid categories is
// closed: display metadata lives in the registry, identity lives here.
type Category string

const (
	CategoryAuto         Category = "Auto"
	CategoryCompras      Category = "Compras"
	CategoryAssistencia  Category = "Assistência médica"
	CategoryCursos       Category = "Cursos"
	CategoryAssinaturas  Category = "Assinaturas"
	CategoryAlimentacao  Category = "Alimentação"
	CategoryFaxina       Category = "Faxina"
	CategoryContas       Category = "Contas"
	CategoryTransporte   Category = "Transporte"
	CategoryServicos     Category = "Serviços"
	CategoryFarmacia     Category = "Farmácia"
	CategorySupermercado Category = "Supermercados"
	CategoryPet          Category = "Pet"
	CategoryTabacaria    Category = "Tabacaria"
	CategoryPsicologo    Category = "Psicólogo"
	CategoryViagens      Category = "Viagens"
	CategoryOutros       Category = "Outros"
	CategoryFotografia   Category = "Fotografia"
)

// CategoryInfo holds the display hints for a category.
type CategoryInfo struct {
	Name  string
	Icon  string
	Color string
}

// categoryRegistry maps each valid category to its display metadata.
var categoryRegistry = map[Category]CategoryInfo{
	CategoryAuto:         {Name: "Auto", Icon: "car", Color: "#3B82F6"},
	CategoryCompras:      {Name: "Compras", Icon: "shopping-bag", Color: "#EC4899"},
	CategoryAssistencia:  {Name: "Assistência médica", Icon: "medical", Color: "#EF4444"},
	CategoryCursos:       {Name: "Cursos", Icon: "graduation-cap", Color: "#8B5CF6"},
	CategoryAssinaturas:  {Name: "Assinaturas", Icon: "tv", Color: "#6366F1"},
	CategoryAlimentacao:  {Name: "Alimentação", Icon: "utensils", Color: "#F59E0B"},
	CategoryFaxina:       {Name: "Faxina", Icon: "home", Color: "#14B8A6"},
	CategoryContas:       {Name: "Contas", Icon: "receipt", Color: "#64748B"},
	CategoryTransporte:   {Name: "Transporte", Icon: "bus", Color: "#0EA5E9"},
	CategoryServicos:     {Name: "Serviços", Icon: "briefcase", Color: "#78716C"},
	CategoryFarmacia:     {Name: "Farmácia", Icon: "pill", Color: "#22C55E"},
	CategorySupermercado: {Name: "Supermercados", Icon: "shopping-cart", Color: "#84CC16"},
	CategoryPet:          {Name: "Pet", Icon: "heart", Color: "#F97316"},
	CategoryTabacaria:    {Name: "Tabacaria", Icon: "flame", Color: "#A16207"},
	CategoryPsicologo:    {Name: "Psicólogo", Icon: "brain", Color: "#A855F7"},
	CategoryViagens:      {Name: "Viagens", Icon: "plane", Color: "#06B6D4"},
	CategoryOutros:       {Name: "Outros", Icon: "star", Color: "#9CA3AF"},
	CategoryFotografia:   {Name: "Fotografia", Icon: "camera", Color: "#475569"},
}

// categoryOrder fixes the listing order of the registry.
var categoryOrder = []Category{
	CategoryAuto,
	CategoryCompras,
	CategoryAssistencia,
	CategoryCursos,
	CategoryAssinaturas,
	CategoryAlimentacao,
	CategoryFaxina,
	CategoryContas,
	CategoryTransporte,
	CategoryServicos,
	CategoryFarmacia,
	CategorySupermercado,
	CategoryPet,
	CategoryTabacaria,
	CategoryPsicologo,
	CategoryViagens,
	CategoryOutros,
	CategoryFotografia,
}

// IsValid reports whether c is one of the registered categories.
func (c Category) IsValid() bool {
	_, ok := categoryRegistry[c]
	return ok
}

// Info returns the display metadata for the category.
// The zero CategoryInfo is returned for unknown categories.
func (c Category) Info() CategoryInfo {
	return categoryRegistry[c]
}

// Categories returns all valid categories in registry order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryNames returns the display names of all categories in registry order.
// Used as the vocabulary handed to the extraction gateway.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		names = append(names, categoryRegistry[c].Name)
	}
	return names
}
