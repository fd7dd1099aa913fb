package content

import (
	"sync"
	"sync/atomic"

	"github.com/Mukesh-219/indian-local-guide-api/internal/cultural"
)

// CulturalLibrary wraps the immutable cultural tables with an append path
// for admin submissions. Additions rebuild the tables and swap the pointer,
// so readers always see a consistent snapshot and never take a lock.
type CulturalLibrary struct {
	mu        sync.Mutex
	regions   []cultural.RegionalInfo
	festivals []cultural.Festival
	etiquette []cultural.EtiquetteRule
	tips      []cultural.BargainingTip

	current atomic.Pointer[cultural.Content]
}

// NewCulturalLibrary builds a library seeded with the given tables.
func NewCulturalLibrary(regions []cultural.RegionalInfo, festivals []cultural.Festival, etiquette []cultural.EtiquetteRule, tips []cultural.BargainingTip) *CulturalLibrary {
	l := &CulturalLibrary{
		regions:   append([]cultural.RegionalInfo(nil), regions...),
		festivals: append([]cultural.Festival(nil), festivals...),
		etiquette: append([]cultural.EtiquetteRule(nil), etiquette...),
		tips:      append([]cultural.BargainingTip(nil), tips...),
	}
	l.rebuild()
	return l
}

// Content returns the current content tables. The returned value is
// immutable; callers may hold it across requests.
func (l *CulturalLibrary) Content() *cultural.Content {
	return l.current.Load()
}

// Tables returns copies of the backing slices, for snapshot export.
func (l *CulturalLibrary) Tables() ([]cultural.RegionalInfo, []cultural.Festival, []cultural.EtiquetteRule, []cultural.BargainingTip) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]cultural.RegionalInfo(nil), l.regions...),
		append([]cultural.Festival(nil), l.festivals...),
		append([]cultural.EtiquetteRule(nil), l.etiquette...),
		append([]cultural.BargainingTip(nil), l.tips...)
}

func (l *CulturalLibrary) add(region *cultural.RegionalInfo, festival *cultural.Festival, rule *cultural.EtiquetteRule, tip *cultural.BargainingTip) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if region != nil {
		l.regions = append(l.regions, *region)
	}
	if festival != nil {
		l.festivals = append(l.festivals, *festival)
	}
	if rule != nil {
		l.etiquette = append(l.etiquette, *rule)
	}
	if tip != nil {
		l.tips = append(l.tips, *tip)
	}
	l.rebuild()
}

// rebuild is called with mu held (or from the constructor).
func (l *CulturalLibrary) rebuild() {
	l.current.Store(cultural.NewContent(l.regions, l.festivals, l.etiquette, l.tips))
}
