package document

import "github.com/goliatone/go-embedkit/pkg/model"

// Per-kind styles give each block type its accent without the caller having
// to ship any CSS. Keyed by the container class suffix.
var kindStyles = map[model.BlockKind]string{
	model.KindQuestion: `        .content-question {
            border-left: 3px solid #007bff;
            background: linear-gradient(135deg, #f8f9ff 0%, #ffffff 100%);
        }
        .content-question .content-text {
            font-weight: 500;
            color: #2c3e50;
        }
        .content-question::before {
            content: "Q";
            display: inline-block;
            font-size: 10px;
            font-weight: bold;
            background: #007bff;
            color: white;
            padding: 2px 6px;
            border-radius: 3px;
            margin-bottom: 6px;
            margin-right: 6px;
        }`,
	model.KindOption: `        .content-option {
            border-left: 3px solid #28a745;
            background: linear-gradient(135deg, #f8fff8 0%, #ffffff 100%);
        }
        .content-option .content-text {
            color: #2c3e50;
        }
        .content-option::before {
            content: "A";
            display: inline-block;
            font-size: 10px;
            font-weight: bold;
            background: #28a745;
            color: white;
            padding: 2px 6px;
            border-radius: 3px;
            margin-bottom: 6px;
            margin-right: 6px;
        }`,
	model.KindGeneral: `        .content-general {
            border-left: 3px solid #6c757d;
        }`,
}

// tableStyles back the table.tmpl markup when a table block renders as its
// own standalone document.
const tableStyles = `        .table-container {
            margin: 8px 0;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
        }
        th {
            background-color: #f2f2f2;
        }`

func styleForKind(kind model.BlockKind) string {
	if kind == model.KindTable {
		return tableStyles
	}
	if css, ok := kindStyles[kind]; ok {
		return css
	}
	return kindStyles[model.KindGeneral]
}

// stylesForKinds collects the per-kind CSS for an aggregate page, in a fixed
// order so rendering stays deterministic.
func stylesForKinds(kinds map[model.BlockKind]bool) string {
	order := []model.BlockKind{model.KindQuestion, model.KindOption, model.KindGeneral}
	out := ""
	for _, kind := range order {
		if !kinds[kind] {
			continue
		}
		out += kindStyles[kind] + "\n"
	}
	return out
}
