package goal

type Kind string

const (
	KindSimple    Kind = "Simple"
	KindEternal   Kind = "Eternal"
	KindChecklist Kind = "Checklist"
)

var AllKinds = []Kind{
	KindSimple,
	KindEternal,
	KindChecklist,
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}
