package domain

// DisplayStatus is the case-processing status stored on a document.
// The numeric values are the codes persisted in api_document.display_status.
type DisplayStatus int

const (
    StatusReported            DisplayStatus = iota // 已檢舉
    StatusInspectionScheduled                      // 已排程稽查
    StatusStatementPeriod                          // 陳述意見期
    StatusWorkStopped                              // 已勒令停工
    StatusPowerCutNotified                         // 已發函斷電
    StatusDemolitionScheduled                      // 已排程拆除
    StatusDemolished                               // 已拆除
    StatusNoLongerTracked                          // 不再追蹤
)

var statusNames = [...]string{
    StatusReported:            "已檢舉",
    StatusInspectionScheduled: "已排程稽查",
    StatusStatementPeriod:     "陳述意見期",
    StatusWorkStopped:         "已勒令停工",
    StatusPowerCutNotified:    "已發函斷電",
    StatusDemolitionScheduled: "已排程拆除",
    StatusDemolished:          "已拆除",
    StatusNoLongerTracked:     "不再追蹤",
}

// DisplayStatuses returns every stored status in code order.
func DisplayStatuses() []DisplayStatus {
    out := make([]DisplayStatus, len(statusNames))
    for i := range statusNames {
        out[i] = DisplayStatus(i)
    }
    return out
}

func (s DisplayStatus) Valid() bool { return s >= 0 && int(s) < len(statusNames) }

func (s DisplayStatus) String() string {
    if !s.Valid() {
        return "unknown"
    }
    return statusNames[s]
}

// StatusFromCode maps a stored code back to its status.
func StatusFromCode(code int) (DisplayStatus, bool) {
    s := DisplayStatus(code)
    return s, s.Valid()
}

// InProgressLabel is the composite filter label covering the four statuses
// between a report and a terminal outcome.
const InProgressLabel = "處理中"

var inProgress = []DisplayStatus{
    StatusInspectionScheduled,
    StatusStatementPeriod,
    StatusWorkStopped,
    StatusDemolitionScheduled,
}

// StatusLabel is a display_status filter value: one granular status or the
// composite in-progress label.
type StatusLabel struct {
    status    DisplayStatus
    composite bool
}

// LabelFor wraps a single stored status as a filter label.
func LabelFor(s DisplayStatus) StatusLabel { return StatusLabel{status: s} }

// InProgress is the composite 處理中 label.
func InProgress() StatusLabel { return StatusLabel{composite: true} }

// StatusLabels lists the nine accepted filter labels: the eight stored
// statuses in code order followed by 處理中.
func StatusLabels() []string {
    out := make([]string, 0, len(statusNames)+1)
    out = append(out, statusNames[:]...)
    return append(out, InProgressLabel)
}

// ParseStatusLabel resolves a display_status query value.
func ParseStatusLabel(raw string) (StatusLabel, error) {
    if raw == InProgressLabel {
        return InProgress(), nil
    }
    for i, name := range statusNames {
        if name == raw {
            return LabelFor(DisplayStatus(i)), nil
        }
    }
    return StatusLabel{}, &ValidationError{Kind: ErrInvalidStatusLabel, Field: "display_status", Value: raw, Accepted: StatusLabels()}
}

// Statuses expands the label into the stored statuses it matches.
func (l StatusLabel) Statuses() []DisplayStatus {
    if l.composite {
        return append([]DisplayStatus(nil), inProgress...)
    }
    return []DisplayStatus{l.status}
}

// Codes is Statuses as stored integer codes.
func (l StatusLabel) Codes() []int32 {
    st := l.Statuses()
    out := make([]int32, len(st))
    for i, s := range st {
        out[i] = int32(s)
    }
    return out
}

// Matches reports whether a latest document with status s satisfies the label.
func (l StatusLabel) Matches(s DisplayStatus) bool {
    for _, m := range l.Statuses() {
        if m == s {
            return true
        }
    }
    return false
}

func (l StatusLabel) String() string {
    if l.composite {
        return InProgressLabel
    }
    return l.status.String()
}

// Bucket is one of the four columns of the nationwide summary.
type Bucket int

const (
    BucketUnhandled  Bucket = iota // 未處理
    BucketInProgress               // 處理中
    BucketPowerCut                 // 已斷電
    BucketDemolished               // 已拆除
)

// BucketOf classifies a latest-document status. Statuses outside the four
// buckets (不再追蹤) report false.
func BucketOf(s DisplayStatus) (Bucket, bool) {
    switch s {
    case StatusReported:
        return BucketUnhandled, true
    case StatusInspectionScheduled, StatusStatementPeriod, StatusWorkStopped, StatusDemolitionScheduled:
        return BucketInProgress, true
    case StatusPowerCutNotified:
        return BucketPowerCut, true
    case StatusDemolished:
        return BucketDemolished, true
    }
    return 0, false
}
