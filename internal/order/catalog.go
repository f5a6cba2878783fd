package order

// Category groups the product catalog by the rules that apply to a line:
// which size set it uses and whether material or filling type mean anything.
type Category string

const (
	CategoryBedding       Category = "bedding"
	CategoryPillow        Category = "pillow"
	CategorySofaProtector Category = "sofa_protector"
	CategoryDuvetFilling  Category = "duvet_filling"
)

var productCatalog = map[string]Category{
	"Sabana Premium":         CategoryBedding,
	"Sabana Bramante":        CategoryBedding,
	"Sabana VIP":             CategoryBedding,
	"Cobertor Velvet Sherpa": CategoryBedding,
	"Cobertor Español":       CategoryBedding,
	"Almohada":               CategoryPillow,
	"Fundas de Almohada":     CategoryPillow,
	"Protectores de Sofá":    CategorySofaProtector,
	"Rellenos Nórdicos":      CategoryDuvetFilling,
	"Coverduvet":             CategoryBedding,
}

var (
	StandardSizes = []string{"Twin", "Full", "Queen", "King"}
	PillowSizes   = []string{"70x50", "90x50"}
	SofaSizes     = []string{"1 Puesto", "2 Puestos", "3 Puestos"}

	PillowMaterials = []string{"Bramante", "Acolchada"}
	FillingTypes    = []string{"Duvet Tacto Pluma", "Relleno Delgado", "Relleno Grueso"}
)

// CategoryOf reports the category of a catalog product type.
func CategoryOf(productType string) (Category, bool) {
	c, ok := productCatalog[productType]
	return c, ok
}

// SizesFor returns the size set a product type draws from. Only pillows and
// sofa protectors have their own sets; everything else, the duvet filling
// included, uses the standard bedding sizes.
func SizesFor(productType string) []string {
	switch productCatalog[productType] {
	case CategoryPillow:
		return PillowSizes
	case CategorySofaProtector:
		return SofaSizes
	default:
		return StandardSizes
	}
}

// ValidSize reports whether size belongs to the product type's size set.
func ValidSize(productType, size string) bool {
	for _, s := range SizesFor(productType) {
		if s == size {
			return true
		}
	}
	return false
}

// AllowsMaterial reports whether the material field is meaningful for the
// product type. Only the pillow itself carries a material; pillowcases do not.
func AllowsMaterial(productType string) bool {
	return productType == "Almohada"
}
