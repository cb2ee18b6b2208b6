package markup

// stylesheet is the embedded print stylesheet. Each .page breaks onto its own
// printed page; backgrounds stay visible because the export enables
// print-background.
const stylesheet = `
* { box-sizing: border-box; }
body {
  font-family: Helvetica, Arial, sans-serif;
  color: #1f2937;
  margin: 0;
  font-size: 12px;
}
.page {
  page-break-after: always;
  padding: 24px 28px;
}
.report-header h1 {
  font-size: 20px;
  margin: 0 0 2px 0;
  color: #111827;
}
.report-header .employee { color: #374151; font-size: 13px; }
.report-header .role { color: #6b7280; }
.tab-bar {
  margin: 14px 0 18px 0;
  border-bottom: 1px solid #e5e7eb;
  padding-bottom: 10px;
}
.tab-pill {
  display: inline-block;
  padding: 5px 14px;
  margin-right: 8px;
  border-radius: 999px;
  border: 1px solid #d1d5db;
  color: #374151;
  text-decoration: none;
}
.tab-pill.active {
  background: #3f51b5;
  border-color: #3f51b5;
  color: #ffffff;
}
.card {
  border: 1px solid #e5e7eb;
  border-radius: 8px;
  padding: 12px 14px;
  margin-bottom: 14px;
}
.card-head { display: flex; justify-content: space-between; align-items: center; }
.card h2 { font-size: 14px; margin: 0; color: #111827; }
.description { color: #4b5563; margin: 8px 0; }
.behaviors { margin: 6px 0 6px 18px; padding: 0; color: #4b5563; }
.chips { margin: 6px 0; }
.chip {
  display: inline-block;
  padding: 2px 10px;
  margin: 0 6px 4px 0;
  border-radius: 999px;
  background: #eef2ff;
  color: #3730a3;
  font-size: 11px;
}
.chip.rating { background: #fef3c7; color: #92400e; }
.chip.status { background: #dcfce7; color: #166534; }
.chip.priority { background: #fee2e2; color: #991b1b; }
.chip.label { background: #f3f4f6; color: #374151; }
.chip.kpi { background: #e0f2fe; color: #075985; }
.comment {
  background: #f9fafb;
  border: 1px solid #f3f4f6;
  border-radius: 6px;
  padding: 8px 10px;
  margin: 8px 0;
}
.comment-head .author { font-weight: bold; margin-right: 6px; }
.comment-head .role, .comment-head .step { color: #6b7280; margin-right: 6px; }
.comment-text { margin: 4px 0; color: #374151; }
.placeholder {
  text-align: center;
  color: #9ca3af;
  border: 1px dashed #d1d5db;
  border-radius: 8px;
  padding: 32px;
}
.end-marker { text-align: center; color: #9ca3af; margin: 16px 0; }
.node {
  border: 1px solid #e5e7eb;
  border-radius: 8px;
  padding: 10px 12px;
  margin: 10px 0;
}
.node-head .badge {
  display: inline-block;
  min-width: 18px;
  text-align: center;
  border-radius: 999px;
  background: #3f51b5;
  color: #ffffff;
  font-size: 11px;
  padding: 1px 5px;
  margin-right: 8px;
}
.node-head .node-title { font-weight: bold; }
.node-head .date { color: #6b7280; margin-left: 8px; }
.node-children {
  margin-left: 18px;
  padding-left: 10px;
  border-left: 2px solid #e5e7eb;
}
.node.truncated { color: #9ca3af; border-style: dashed; }
`
