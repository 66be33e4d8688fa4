package view

// layoutTemplate holds the page shell, the shared fragments and the page script.
// Fragments are also executed on their own for partial refreshes, so every
// piece the script swaps in is a named template here.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} | Hospital CMS</title>
<link rel="stylesheet" href="/assets/css/style.css">
</head>
<body data-flash="{{.Flash}}">
<div id="header">{{template "header" .Header}}</div>
<main class="main-content">{{template "content" .Content}}</main>
<div id="modal" class="modal" hidden>
  <div class="modal-content">
    <span class="close" data-action="close-modal">&times;</span>
    <div id="modal-body"></div>
  </div>
</div>
<div id="overlay" class="overlay"></div>
{{template "modals" .Modals}}
<div id="footer">{{template "footer" .Footer}}</div>
<script>{{template "script"}}</script>
</body>
</html>{{end}}

{{define "header"}}<header class="header">
  <div class="logo-section">
    <span class="logo-title">Hospital CMS</span>
  </div>
  {{if not .Landing}}<nav>
    {{range .Items}}{{if eq .Kind "link"}}<a id="{{.ID}}" class="{{.Class}}" href="{{.Href}}">{{.Label}}</a>
    {{else if eq .Kind "modal"}}<button id="{{.ID}}" class="{{.Class}}" data-action="open-modal" data-modal="{{.Target}}">{{.Label}}</button>
    {{else}}<a id="{{.ID}}" href="#" data-action="post" data-url="{{.Href}}">{{.Label}}</a>
    {{end}}{{end}}
  </nav>{{end}}
</header>{{end}}

{{define "footer"}}<footer class="footer">
  <div class="footer-container">
    <div class="footer-logo">
      <p>{{.Copyright}}</p>
    </div>
    <div class="footer-links">
      {{range .Columns}}<div class="footer-column">
        <h4>{{.Title}}</h4>
        {{range .Links}}<a href="#">{{.}}</a>{{end}}
      </div>{{end}}
    </div>
  </div>
</footer>{{end}}

{{define "doctorList"}}{{if .Message}}<p class="noPatientRecord">{{.Message}}</p>{{else}}{{range .Cards}}<div class="doctor-card" id="{{.DOMID}}">
  <div class="doctor-info">
    <h3>{{.Name}}</h3>
    <p>{{.Specialty}}</p>
    <p>{{.Email}}</p>
    <p>{{.Availability}}</p>
  </div>
  <div class="card-actions">{{range .Actions}}<button class="{{.Class}}" data-action="{{.Kind}}" data-url="{{.URL}}" data-confirm="{{.Confirm}}" data-prompt="{{.Prompt}}" data-target="{{.Target}}" data-list="{{.List}}">{{.Label}}</button>{{end}}</div>
</div>{{end}}{{end}}{{end}}

{{define "appointmentTable"}}{{if .Message}}<tr><td colspan="{{.Columns}}" class="noPatientRecord">{{.Message}}</td></tr>{{else}}{{range .Rows}}<tr id="appointment-{{.AppointmentID}}">
  <td>{{.PatientID}}</td>
  <td>{{.Name}}</td>
  <td>{{.Phone}}</td>
  <td>{{.Email}}</td>
  <td>{{.Time}}</td>
</tr>{{end}}{{end}}{{end}}

{{define "patientAppointmentList"}}{{if .Message}}<tr><td colspan="5" class="noPatientRecord">{{.Message}}</td></tr>{{else}}{{range .Rows}}<tr id="{{.DOMID}}">
  <td>{{.Doctor}}</td>
  <td>{{.Date}}</td>
  <td>{{.Time}}</td>
  <td>{{.Status}}</td>
  <td>{{if .CancelURL}}<button class="adminBtn" data-action="delete" data-url="{{.CancelURL}}" data-confirm="Cancel this appointment?" data-target="{{.DOMID}}">Cancel</button>{{end}}</td>
</tr>{{end}}{{end}}{{end}}

{{define "bookingOverlay"}}<div class="booking-overlay">
  {{if .Message}}<p>{{.Message}}</p><button data-action="close-overlay">Close</button>{{else}}
  <h2>Book an appointment with Dr. {{.DoctorName}}</h2>
  <form data-form="json" action="/patient/appointments">
    <input type="hidden" name="doctor_id" value="{{.DoctorID}}">
    <input type="hidden" name="patient_id" value="{{.PatientID}}">
    <p>Patient: {{.PatientName}} ({{.PatientEmail}})</p>
    <p>Specialty: {{.Specialty}}</p>
    <label>Date <input type="date" name="date" min="{{.MinDate}}" required></label>
    <label>Time <select name="time" required>{{range .Slots}}<option value="{{.}}">{{.}}</option>{{end}}</select></label>
    <button type="submit" class="confirm-booking">Confirm Booking</button>
    <button type="button" data-action="close-overlay">Cancel</button>
  </form>{{end}}
</div>{{end}}

{{define "doctorFilters"}}<div class="filters">
  <input type="text" id="searchBar" name="name" placeholder="Search by doctor name" data-filter="content" data-url="{{.}}">
  <select id="filterTime" name="time" data-filter="content" data-url="{{.}}">
    <option value="">Sort by time</option>
    <option value="AM">AM</option>
    <option value="PM">PM</option>
  </select>
  <select id="filterSpecialty" name="specialty" data-filter="content" data-url="{{.}}">
    <option value="">Filter by specialty</option>
    {{range specialties}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
</div>{{end}}

{{define "modals"}}{{range .}}{{template "modal" .}}{{end}}{{end}}
{{define "modal"}}<template id="modal-{{.}}">{{if eq . "adminLogin"}}<h2>Admin Login</h2>
<form data-form="json" action="/login/admin">
  <input type="text" name="username" placeholder="Username" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit" class="dashboard-btn">Login</button>
</form>{{else if eq . "doctorLogin"}}<h2>Doctor Login</h2>
<form data-form="json" action="/login/doctor">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit" class="dashboard-btn">Login</button>
</form>{{else if eq . "patientLogin"}}<h2>Patient Login</h2>
<form data-form="json" action="/login/patient">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit" class="dashboard-btn">Login</button>
</form>{{else if eq . "patientSignup"}}<h2>Patient Signup</h2>
<form data-form="json" action="/signup/patient">
  <input type="text" name="name" placeholder="Name" required>
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <input type="text" name="phone" placeholder="Phone" required>
  <input type="text" name="address" placeholder="Address" required>
  <button type="submit" class="dashboard-btn">Sign Up</button>
</form>{{else if eq . "addDoctor"}}<h2>Add Doctor</h2>
<form data-form="json" action="/admin/doctors">
  <input type="text" name="name" placeholder="Doctor Name" required>
  <select name="specialty" required>
    <option value="">Specialization</option>
    {{range specialties}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <input type="text" name="phone" placeholder="Mobile No." required>
  <fieldset><legend>Availability</legend>
    {{range slots}}<label><input type="checkbox" name="availability[]" value="{{.}}"> {{.}}</label>{{end}}
  </fieldset>
  <button type="submit" class="dashboard-btn">Save</button>
</form>{{end}}</template>{{end}}
`

const landingTemplate = `{{define "content"}}<div class="container">
  <h2>Select Your Role:</h2>
  <button class="dashboard-btn" data-action="open-modal" data-modal="adminLogin">Admin</button>
  <button class="dashboard-btn" data-action="open-modal" data-modal="doctorLogin">Doctor</button>
  <button class="dashboard-btn" data-action="post" data-url="/role/patient">Patient</button>
</div>{{end}}`

const adminTemplate = `{{define "content"}}<div class="container">
  {{template "doctorFilters" "/admin/doctors/fragment"}}
  <div id="content">{{template "doctorList" .Doctors}}</div>
</div>{{end}}`

const patientTemplate = `{{define "content"}}<div class="container">
  {{template "doctorFilters" "/patient/doctors/fragment"}}
  <div id="content">{{template "doctorList" .Doctors}}</div>
</div>{{end}}`

const doctorTemplate = `{{define "content"}}<div class="container">
  <div class="filters">
    <input type="text" id="searchBar" name="name" placeholder="Search by patient name" data-filter="patientTableBody" data-url="/doctor/appointments/fragment">
    <button id="todayButton" data-action="today" data-input="datePicker">Today's Appointments</button>
    <input type="date" id="datePicker" name="date" value="{{.Date}}" data-filter="patientTableBody" data-url="/doctor/appointments/fragment">
  </div>
  <table id="patientTable">
    <thead><tr><th>Patient ID</th><th>Name</th><th>Phone No.</th><th>Email</th><th>Time</th></tr></thead>
    <tbody id="patientTableBody">{{template "appointmentTable" .Table}}</tbody>
  </table>
</div>{{end}}`

const patientAppointmentsTemplate = `{{define "content"}}<div class="container">
  <div class="filters">
    <input type="text" id="searchBar" name="name" placeholder="Search by doctor name" data-filter="appointmentTableBody" data-url="/patient/appointments/fragment">
    <select id="appointmentFilter" name="condition" data-filter="appointmentTableBody" data-url="/patient/appointments/fragment">
      <option value="">All appointments</option>
      <option value="future">Upcoming</option>
      <option value="past">Past</option>
    </select>
  </div>
  <table id="appointmentTable">
    <thead><tr><th>Doctor</th><th>Date</th><th>Time</th><th>Status</th><th>Actions</th></tr></thead>
    <tbody id="appointmentTableBody">{{template "patientAppointmentList" .List}}</tbody>
  </table>
</div>{{end}}`

// scriptTemplate wires DOM events to the portal's endpoints. bindActions must
// run after every injection because replacing markup drops its listeners.
const scriptTemplate = `{{define "script"}}
(function () {
  var seq = {};
  var applied = {};

  function openModal(name) {
    var tpl = document.getElementById("modal-" + name);
    var body = document.getElementById("modal-body");
    if (!tpl || !body) return;
    body.innerHTML = tpl.innerHTML;
    document.getElementById("modal").hidden = false;
    bindActions(body);
  }

  function closeModal() {
    document.getElementById("modal").hidden = true;
    document.getElementById("modal-body").innerHTML = "";
  }

  function scripted(extra) {
    var headers = { "X-Requested-With": "XMLHttpRequest" };
    for (var key in extra) headers[key] = extra[key];
    return headers;
  }

  function isJSON(res) {
    return (res.headers.get("Content-Type") || "").indexOf("application/json") === 0;
  }

  function filterParams(target) {
    var params = new URLSearchParams();
    document.querySelectorAll("[data-filter='" + target + "']").forEach(function (el) {
      params.set(el.name, el.value.trim());
    });
    return params;
  }

  function handleResult(res) {
    return res.json().then(function (data) {
      if (data.message) alert(data.message);
      if (data.redirect) { window.location.href = data.redirect; return data; }
      return data;
    });
  }

  function formJSON(form) {
    var out = {};
    new FormData(form).forEach(function (value, key) {
      if (key.slice(-2) === "[]") {
        key = key.slice(0, -2);
        (out[key] = out[key] || []).push(value);
      } else {
        out[key] = value;
      }
    });
    return out;
  }

  function refresh(input) {
    var target = input.dataset.filter;
    var params = filterParams(target);
    seq[target] = (seq[target] || 0) + 1;
    var mine = seq[target];
    fetch(input.dataset.url + "?" + params.toString(), { headers: scripted({ "X-Request-Seq": String(mine) }) })
      .then(function (res) {
        if (res.status === 204) return null;
        if (!res.ok || isJSON(res)) return handleResult(res).then(function () { return null; });
        return res.text();
      })
      .then(function (html) {
        if (html === null || mine < (applied[target] || 0)) return;
        applied[target] = mine;
        var el = document.getElementById(target);
        el.innerHTML = html;
        bindActions(el);
      })
      .catch(function (err) { console.error("Error refreshing " + target, err); });
  }

  function bindActions(root) {
    root.querySelectorAll("[data-action]").forEach(function (el) {
      if (el.dataset.bound) return;
      el.dataset.bound = "1";
      el.addEventListener("click", function (e) {
        e.preventDefault();
        var d = el.dataset;
        switch (d.action) {
        case "open-modal": openModal(d.modal); break;
        case "close-modal": closeModal(); break;
        case "close-overlay": document.getElementById("overlay").innerHTML = ""; break;
        case "prompt": alert(d.prompt); break;
        case "post": fetch(d.url, { method: "POST", headers: scripted() }).then(handleResult); break;
        case "today":
          var picker = document.getElementById(d.input);
          picker.value = new Date().toISOString().split("T")[0];
          refresh(picker);
          break;
        case "delete":
          if (!confirm(d.confirm)) return;
          var url = d.list ? d.url + "?" + filterParams(d.list).toString() : d.url;
          fetch(url, { method: "DELETE", headers: scripted() }).then(handleResult).then(function (data) {
            if (!data.success) return;
            var list = d.list && document.getElementById(d.list);
            if (list && data.data && typeof data.data.html === "string") {
              list.innerHTML = data.data.html;
              bindActions(list);
              return;
            }
            var node = document.getElementById(d.target);
            if (node) node.remove();
          }).catch(function (err) { console.error("Error deleting " + d.target, err); });
          break;
        case "overlay":
          fetch(d.url, { headers: scripted() }).then(function (res) {
            if (!res.ok || isJSON(res)) return handleResult(res).then(function () { return null; });
            return res.text();
          }).then(function (html) {
            if (html === null) return;
            var overlay = document.getElementById(d.target);
            overlay.innerHTML = html;
            bindActions(overlay);
          }).catch(function (err) { console.error("Error loading " + d.target, err); });
          break;
        }
      });
    });
    root.querySelectorAll("form[data-form='json']").forEach(function (form) {
      if (form.dataset.bound) return;
      form.dataset.bound = "1";
      form.addEventListener("submit", function (e) {
        e.preventDefault();
        fetch(form.getAttribute("action"), {
          method: "POST",
          headers: scripted({ "Content-Type": "application/json" }),
          body: JSON.stringify(formJSON(form))
        }).then(handleResult).then(function (data) {
          if (data.success && !data.redirect) window.location.reload();
        }).catch(function (err) {
          console.error(err);
          alert("Something went wrong. Please try again.");
        });
      });
    });
    root.querySelectorAll("[data-filter]").forEach(function (el) {
      if (el.dataset.filterBound) return;
      el.dataset.filterBound = "1";
      el.addEventListener(el.tagName === "INPUT" && el.type === "text" ? "input" : "change", function () { refresh(el); });
    });
  }

  document.addEventListener("DOMContentLoaded", function () {
    var flash = document.body.dataset.flash;
    if (flash) alert(flash);
    bindActions(document);
  });
})();
{{end}}`
