package itinerary

const dayTemplate = `{{define "day"}}<div class="card day-card">
  <div class="card-header">
    <h3>Day {{.Day}}{{if .Date}} - {{.Date}}{{end}}</h3>
  </div>
  <div class="card-body">
{{- range .Activities}}
    <div class="activity">
{{- if .Time}}
      <p class="text-primary fw-bold">{{.Time}}</p>
{{- end}}
      <h5>{{.Activity}}</h5>
{{- if .Location}}
      <p><strong>Location:</strong> {{.Location}}</p>
{{- end}}
{{- if .Notes}}
      <p class="text-muted fst-italic">{{.Notes}}</p>
{{- end}}
    </div>
{{- end}}
  </div>
</div>
{{end}}`

const viewTemplate = `{{define "view"}}<div class="itinerary-header mb-4">
  <h2>{{.Destination}}</h2>
  <div class="row mt-3">
    <div class="col-md-4">
      <p><strong>Duration:</strong> {{.Duration}} days</p>
    </div>
{{- if .HasDateRange}}
    <div class="col-md-4">
      <p><strong>Dates:</strong> {{.StartDate}} to {{.EndDate}}</p>
    </div>
{{- end}}
{{- with .Budget}}
    <div class="col-md-4">
      <p><strong>Budget:</strong> {{.}}</p>
    </div>
{{- end}}
  </div>
{{- with .Preferences}}
  <div class="preferences mt-2">
    <p><strong>Preferences:</strong> {{join . ", "}}</p>
  </div>
{{- end}}
</div>
<div class="d-flex justify-content-end mb-3">
  <button class="btn btn-outline-primary me-2" id="print-itinerary" type="button">Print</button>
  <button class="btn btn-outline-primary" id="download-itinerary" type="button">Download</button>
</div>
<ul class="nav nav-tabs" id="daysTab" role="tablist">
  <li class="nav-item" role="presentation">
    <button class="nav-link active" id="all-days-tab" data-bs-toggle="tab" data-bs-target="#all-days" type="button" role="tab" aria-controls="all-days" aria-selected="true">All Days</button>
  </li>
{{- range .Days}}
  <li class="nav-item" role="presentation">
    <button class="nav-link" id="day-{{.Day}}-tab" data-bs-toggle="tab" data-bs-target="#day-{{.Day}}" type="button" role="tab" aria-controls="day-{{.Day}}" aria-selected="false">Day {{.Day}}</button>
  </li>
{{- end}}
</ul>
<div class="tab-content" id="daysTabContent">
  <div class="tab-pane fade show active" id="all-days" role="tabpanel" aria-labelledby="all-days-tab">
    <div class="days-container mt-3">
{{- range .Days}}
{{template "day" .}}
{{- end}}
    </div>
  </div>
{{- range .Days}}
  <div class="tab-pane fade" id="day-{{.Day}}" role="tabpanel" aria-labelledby="day-{{.Day}}-tab">
{{template "day" .}}
  </div>
{{- end}}
</div>
{{end}}`

const printTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Travel Itinerary - {{.Destination}}</title>
  <style>
    body { font-family: Arial, sans-serif; padding: 20px; }
    h1 { color: #007bff; }
    .day { margin-bottom: 20px; }
    .day-header { background: #f0f0f0; padding: 10px; border-radius: 5px; }
    .activity { margin: 10px 0; padding: 10px; border-left: 3px solid #007bff; }
    .time { font-weight: bold; color: #007bff; }
    .summary { background: #f9f9f9; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <h1>Travel Itinerary - {{.Destination}}</h1>
  <div class="summary">
    <p><strong>Duration:</strong> {{.Duration}} days</p>
{{- if .HasDateRange}}
    <p><strong>Dates:</strong> {{.StartDate}} to {{.EndDate}}</p>
{{- end}}
{{- with .Budget}}
    <p><strong>Budget:</strong> {{.}}</p>
{{- end}}
{{- with .Preferences}}
    <p><strong>Preferences:</strong> {{join . ", "}}</p>
{{- end}}
  </div>
{{- range .Days}}
  <div class="day">
    <div class="day-header">
      <h2>Day {{.Day}}{{if .Date}} - {{.Date}}{{end}}</h2>
    </div>
{{- range .Activities}}
    <div class="activity">
{{- if .Time}}
      <p class="time">{{.Time}}</p>
{{- end}}
      <p><strong>{{.Activity}}</strong></p>
{{- if .Location}}
      <p>Location: {{.Location}}</p>
{{- end}}
{{- if .Notes}}
      <p>Notes: {{.Notes}}</p>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
  <script>window.addEventListener("load", function () { window.focus(); window.print(); });</script>
</body>
</html>
`
