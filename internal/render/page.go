package render

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="refresh" content="3600">
  <title>Calendar</title>
  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: Arial, sans-serif;
      background: #fff;
      color: #000;
      padding: 20px;
      max-width: 600px;
      margin: 0 auto;
    }

    h1 {
      font-size: 28px;
      margin-bottom: 5px;
      border-bottom: 2px solid #000;
      padding-bottom: 10px;
    }

    .calendar-name {
      font-size: 14px;
      color: #666;
      margin-bottom: 20px;
    }

    .event {
      border-bottom: 1px solid #ccc;
      padding: 15px 0;
    }

    .event:last-child {
      border-bottom: none;
    }

    .event-date {
      font-size: 14px;
      color: #666;
      margin-bottom: 5px;
    }

    .event-time {
      font-size: 16px;
      font-weight: bold;
      margin-bottom: 5px;
    }

    .event-title {
      font-size: 18px;
      line-height: 1.4;
    }

    .refresh-note {
      margin-top: 30px;
      text-align: center;
      font-size: 12px;
      color: #999;
    }
  </style>
</head>
<body>
  <h1>Anstehende Termine</h1>
  <div class="calendar-name">{{.CalendarName}}</div>
{{- if .Events}}
{{- range .Events}}
  <div class="event">
    <div class="event-date">{{.Date}}</div>
    <div class="event-time">{{.Time}}</div>
    <div class="event-title">{{.Title}}</div>
  </div>
{{- end}}
{{- else}}
  <p>Keine anstehenden Termine</p>
{{- end}}
  <div class="refresh-note">Zuletzt aktualisiert: {{.LastUpdated}}<br>Automatische Aktualisierung jede Stunde</div>
</body>
</html>
`

const errorHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Error</title>
  <style>
    body { font-family: Arial; padding: 20px; }
    .error { color: red; }
  </style>
</head>
<body>
  <h1>Error</h1>
  <p class="error">Failed to load calendar events. Please check your configuration.</p>
</body>
</html>
`
