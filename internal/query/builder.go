package query

import (
    "fmt"
    "strconv"
    "strings"
)

// Plan is a parameterised Postgres statement.
type Plan struct {
    SQL  string
    Args []any
}

// Wrap embeds the plan as the single %s of format, keeping its arguments.
func (p Plan) Wrap(format string) Plan {
    return Plan{SQL: fmt.Sprintf(format, p.SQL), Args: p.Args}
}

// latestOrder picks one document per factory: newest created_at, ties by id.
const latestOrder = "ORDER BY d.factory_id, d.created_at DESC, d.id DESC"

const latestDocuments = "SELECT DISTINCT ON (d.factory_id) d.factory_id, d.display_status FROM api_document d " + latestOrder

type builder struct {
    args []any
}

func (b *builder) bind(v any) string {
    b.args = append(b.args, v)
    return "$" + strconv.Itoa(len(b.args))
}

// FactoryIDs plans the id set selected by f. The status clause reads the
// latest-document view over every factory; region and source then narrow the
// factory rows.
func FactoryIDs(f Filter) Plan {
    var b builder
    var conds []string
    if st, ok := f.Status(); ok {
        conds = append(conds, fmt.Sprintf(
            "f.id IN (SELECT latest.factory_id FROM (%s) latest WHERE latest.display_status = ANY(%s))",
            latestDocuments, b.bind(st.Codes())))
    }
    if p := f.RegionPrefixes(); p != nil {
        conds = append(conds, fmt.Sprintf("(f.townname LIKE %s OR f.townname LIKE %s)",
            b.bind(likePrefix(p[0])), b.bind(likePrefix(p[1]))))
    }
    if src := f.Source(); src != "" {
        conds = append(conds, "f.source = "+b.bind(string(src)))
    }
    sql := "SELECT f.id FROM api_factory f"
    if len(conds) > 0 {
        sql += " WHERE " + strings.Join(conds, " AND ")
    }
    return Plan{SQL: sql, Args: b.args}
}

func CountFactories(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT count(*) FROM (%s) scope")
}

// CountLatestDocuments counts one latest document per factory in scope,
// i.e. the factories that have any document.
func CountLatestDocuments(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT count(DISTINCT d.factory_id) FROM api_document d WHERE d.factory_id IN (%s)")
}

// CountReportRecords counts every report row of the factories in scope.
func CountReportRecords(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT count(*) FROM api_reportrecord r WHERE r.factory_id IN (%s)")
}

// CountReportedFactories counts factories in scope with at least one report.
func CountReportedFactories(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT count(DISTINCT r.factory_id) FROM api_reportrecord r WHERE r.factory_id IN (%s)")
}

func CountImages(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT count(*) FROM api_image i WHERE i.factory_id IN (%s)")
}

// LatestStatusCounts groups the latest document of each factory in scope by
// display status. Rows are (display_status, count).
func LatestStatusCounts(f Filter) Plan {
    return FactoryIDs(f).Wrap("SELECT latest.display_status, count(*) FROM (" +
        "SELECT DISTINCT ON (d.factory_id) d.factory_id, d.display_status FROM api_document d " +
        "WHERE d.factory_id IN (%s) " + latestOrder +
        ") latest GROUP BY latest.display_status ORDER BY latest.display_status")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(s string) string { return likeEscaper.Replace(s) + "%" }
