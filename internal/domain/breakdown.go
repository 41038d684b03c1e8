package domain

import (
    "bytes"
    "encoding/json"
)

// Counts is the rollup for one factory set.
type Counts struct {
    Factories     int `json:"factories"`
    Documents     int `json:"documents"`
    ReportRecords int `json:"report_records"`
}

// Breakdown is the nationwide node of a rollup. Cities is nil unless a city
// or town level was requested.
type Breakdown struct {
    Counts
    Cities Regions
}

// RegionNode is a city or town node. Towns is nil below the town level and
// for cities when only the city level was requested.
type RegionNode struct {
    Name string
    Counts
    Towns Regions
}

// Regions keeps region nodes in reference-table order and encodes them as a
// JSON object keyed by name.
type Regions []RegionNode

func (b Breakdown) MarshalJSON() ([]byte, error) {
    return marshalNode(b.Counts, "cities", b.Cities)
}

func (n RegionNode) MarshalJSON() ([]byte, error) {
    return marshalNode(n.Counts, "towns", n.Towns)
}

func marshalNode(c Counts, childKey string, children Regions) ([]byte, error) {
    fields := orderedObject{
        {"factories", c.Factories},
        {"documents", c.Documents},
        {"report_records", c.ReportRecords},
    }
    if children != nil {
        fields = append(fields, field{childKey, children})
    }
    return fields.MarshalJSON()
}

func (r Regions) MarshalJSON() ([]byte, error) {
    obj := make(orderedObject, len(r))
    for i, n := range r {
        obj[i] = field{n.Name, n}
    }
    return obj.MarshalJSON()
}

// Find returns the node with the given name.
func (r Regions) Find(name string) (RegionNode, bool) {
    for _, n := range r {
        if n.Name == name {
            return n, true
        }
    }
    return RegionNode{}, false
}

// CitySummary is one row of the nationwide status summary. ReportRecords
// counts factories with at least one report, not report rows.
type CitySummary struct {
    City          string
    Factories     int
    Documents     int
    ReportRecords int
    Buckets       [4]int // indexed by Bucket
}

func (c CitySummary) Bucket(b Bucket) int { return c.Buckets[b] }

func (c CitySummary) MarshalJSON() ([]byte, error) {
    return orderedObject{
        {"factories", c.Factories},
        {"documents", c.Documents},
        {"report_records", c.ReportRecords},
        {"處理中", c.Buckets[BucketInProgress]},
        {"未處理", c.Buckets[BucketUnhandled]},
        {"已斷電", c.Buckets[BucketPowerCut]},
        {"已拆除", c.Buckets[BucketDemolished]},
    }.MarshalJSON()
}

// Summary is the nationwide status summary in reference-table city order.
type Summary []CitySummary

func (s Summary) MarshalJSON() ([]byte, error) {
    obj := make(orderedObject, len(s))
    for i, c := range s {
        obj[i] = field{c.City, c}
    }
    return obj.MarshalJSON()
}

type field struct {
    key   string
    value any
}

// orderedObject encodes as a JSON object preserving field order.
type orderedObject []field

func (o orderedObject) MarshalJSON() ([]byte, error) {
    var buf bytes.Buffer
    buf.WriteByte('{')
    for i, f := range o {
        if i > 0 {
            buf.WriteByte(',')
        }
        k, err := json.Marshal(f.key)
        if err != nil {
            return nil, err
        }
        v, err := json.Marshal(f.value)
        if err != nil {
            return nil, err
        }
        buf.Write(k)
        buf.WriteByte(':')
        buf.Write(v)
    }
    buf.WriteByte('}')
    return buf.Bytes(), nil
}
