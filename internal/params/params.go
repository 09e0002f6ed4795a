// Package params defines the logging parameter schema: the ordered prompt
// sequence, per-platform defaults, and the flag tokens the vendor logger
// understands.
package params

import "runtime"

// Configuration record keys, in prompt order.
const (
	KeyInterface  = "INTERFACE"
	KeyChannel    = "CHANNEL"
	KeyModel      = "MODEL"
	KeyBitrate    = "BITRATE"
	KeyBitrateNew = "BITRATE_NEW"
	KeyNodeID     = "NODEID"
	KeyNodeIDNew  = "NODEID_NEW"
	KeySample     = "SAMPLE"
	KeySync       = "SYNC"
	KeyDrate      = "DRATE"
	KeyFilter     = "FILTER"
	KeyCSV        = "CSV"
	KeyTempc      = "TEMPC"
	KeyNoscale    = "NOSCALE"
	KeySavecfg    = "SAVECFG"
)

// Flag tokens forwarded verbatim to the vendor logger.
const (
	TokSyncHz  = "--sync_hz"
	TokDrate   = "--drate"
	TokOutfile = "--outfile"
	TokTempc   = "--tempc"
	TokNoscale = "--noscale"
	TokSvcfg   = "--svcfg"
)

// Model maps an IMU model name to its vendor logger script.
type Model struct {
	Name   string
	Script string
}

// Models lists the supported Epson IMU models.
var Models = []Model{
	{Name: "A552", Script: "can_a552_logger.py"},
	{Name: "G552PC1", Script: "can_g552pc1_logger.py"},
}

// ScriptFor returns the logger script for a model name.
func ScriptFor(model string) (string, bool) {
	for _, m := range Models {
		if m.Name == model {
			return m.Script, true
		}
	}
	return "", false
}

// FilterChoices are the output filter selections the logger accepts
// (Table 5.3 of the A552 datasheet). An empty selection lets the logger
// auto-select a moving average from the output data rate.
var FilterChoices = []string{
	"K64_FC83", "K64_FC220",
	"K128_FC36", "K128_FC110", "K128_FC350",
	"K512_FC9", "K512_FC16", "K512_FC60", "K512_FC210", "K512_FC460",
	"UDF4", "UDF64", "UDF128", "UDF512",
}

// Param is one entry in the collection sequence.
type Param struct {
	Key     string
	Label   string
	Default string // substituted when the answer is empty; ignored for yes/no params
	YesNo   bool
	YesTok  string // chosen on empty or "y"
	NoTok   string // chosen on "n"
}

// Sequence returns the ordered prompt list with platform defaults applied.
func Sequence() []Param {
	return []Param{
		{Key: KeyInterface, Label: "CAN interface adapter", Default: defaultInterface()},
		{Key: KeyChannel, Label: "CAN channel", Default: defaultChannel()},
		{Key: KeyModel, Label: "IMU model (A552/G552PC1)", Default: "A552"},
		{Key: KeyBitrate, Label: "CAN bitrate [bps]", Default: "250000"},
		{Key: KeyBitrateNew, Label: "New bitrate to program [bps, blank = keep]", Default: ""},
		{Key: KeyNodeID, Label: "CAN node ID", Default: "1"},
		{Key: KeyNodeIDNew, Label: "New node ID to program [blank = keep]", Default: ""},
		{Key: KeySample, Label: "Samples to capture", Default: "1000"},
		{Key: KeySync, Label: "Use external SYNC sampling? (y/n)", YesNo: true, YesTok: TokSyncHz, NoTok: TokDrate},
		{Key: KeyDrate, Label: "Output data rate [Hz]", Default: "100"},
		{Key: KeyFilter, Label: "Output filter [blank = auto]", Default: ""},
		{Key: KeyCSV, Label: "Write output to CSV file? (y/n)", YesNo: true, YesTok: TokOutfile, NoTok: ""},
		{Key: KeyTempc, Label: "Include temperature data? (y/n)", YesNo: true, YesTok: TokTempc, NoTok: ""},
		{Key: KeyNoscale, Label: "Scale data to physical units? (y/n)", YesNo: true, YesTok: "", NoTok: TokNoscale},
		{Key: KeySavecfg, Label: "Save settings to device flash? (y/n)", YesNo: true, YesTok: TokSvcfg, NoTok: ""},
	}
}

// Keys returns the record keys in canonical (prompt) order.
func Keys() []string {
	seq := Sequence()
	keys := make([]string, len(seq))
	for i, p := range seq {
		keys[i] = p.Key
	}
	return keys
}

// Resolve maps a raw answer to the stored value. Empty answers take the
// default; for yes/no parameters an explicit "n" selects the no-token and
// anything else the yes-token, matching the original prompt behavior.
// Non-empty free-form answers pass through uninterpreted.
func Resolve(p Param, answer string) string {
	if p.YesNo {
		switch answer {
		case "n", "N", "no", "No", "NO":
			return p.NoTok
		default:
			return p.YesTok
		}
	}
	if answer == "" {
		return p.Default
	}
	return answer
}

// The vendor logger picks these itself when -i/-c are omitted; the prompts
// surface the same defaults so the stored record is explicit.
func defaultInterface() string {
	if runtime.GOOS == "windows" {
		return "pcan"
	}
	return "socketcan"
}

func defaultChannel() string {
	if runtime.GOOS == "windows" {
		return "PCAN_USBBUS1"
	}
	return "can0"
}
