package tally

import "github.com/MrJamesThe3rd/gst2tally/internal/ledger"

const (
	envelopeVersion = "1.0"
	actionCreate    = "Create"
	taxTypeGST      = "GST"
)

type ledgerMaster struct {
	NameAttr string `xml:"NAME,attr"`
	Action   string `xml:"ACTION,attr"`
	Name     string `xml:"NAME"`
	Parent   string `xml:"PARENT"`
	BillWise yesNo  `xml:"ISBILLWISEON"`
	TaxType  string `xml:"TAXTYPE,omitempty"`
	DutyHead string `xml:"GSTDUTYHEAD,omitempty"`
}

// Masters renders the ledgers of set, in creation order, as an "All Masters"
// import for company.
func Masters(company string, set *ledger.Set) ([]byte, error) {
	accounts := set.Accounts()
	messages := make([]message, 0, len(accounts))

	for _, a := range accounts {
		m := &ledgerMaster{
			NameAttr: a.Name,
			Action:   actionCreate,
			Name:     a.Name,
			Parent:   string(a.Group),
			BillWise: yesNo(a.BillWise),
		}

		if a.GST {
			m.TaxType = taxTypeGST
			m.DutyHead = string(a.DutyHead)
		}

		messages = append(messages, message{UDF: udfNamespace, Ledger: m})
	}

	return render(newEnvelope(envelopeVersion, reportMasters, company, messages))
}
