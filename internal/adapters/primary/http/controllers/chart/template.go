package chartController

import "html/template"

// pageData данные для шаблона страницы.
// Messages - flash-сообщения текущего запроса (валидация, успех, ошибки генерации).
// SVGContent - готовая SVG-разметка, вставляется в страницу без экранирования.
type pageData struct {
	Messages   []string
	SVGContent template.HTML
}

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Chart Generator</title>
  <style>
    .svg-container {
      width: 100%;
      text-align: center;
      margin-top: 20px;
    }
    svg {
      width: 80%;
      height: auto;
      border: 1px solid #ccc;
    }
  </style>
</head>
<body>
  <h1>Chart Generator</h1>
  {{if .Messages}}
  <ul style="color: red;">
    {{range .Messages}}
    <li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}
  <form method="post">
    <label>Name:</label><br>
    <input type="text" name="name"><br>
    <label>Year:</label><br>
    <input type="text" name="year"><br>
    <label>Month:</label><br>
    <input type="text" name="month"><br>
    <label>Day:</label><br>
    <input type="text" name="day"><br>
    <label>Hour:</label><br>
    <input type="text" name="hour"><br>
    <label>Minute:</label><br>
    <input type="text" name="minute"><br>
    <label>City:</label><br>
    <input type="text" name="city"><br>
    <label>Nation:</label><br>
    <input type="text" name="nation"><br><br>
    <input type="submit" value="Generate Chart">
  </form>

  {{if .SVGContent}}
  <div class="svg-container">
    <h2>Generated Chart:</h2>
    {{.SVGContent}}
  </div>
  {{end}}
</body>
</html>
`
