// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"reviewpress/internal/models"
	"reviewpress/internal/render"
)

// roles lists the assignable roles in picker order.
var roles = []models.Role{models.RoleAdmin, models.RoleEditor, models.RoleAuthor}

// UsersList renders the user table. Admin only.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
	}

	a.renderer.Page(w, r, "users", &render.PageData{
		Title:   "Users",
		Section: "users",
		Data:    map[string]any{"Users": users, "Roles": roles},
		Flashes: flashesFrom(r),
	})
}

// UserRole changes the role of another user. Admins cannot change their
// own role, so the site always keeps at least one admin.
func (a *Admin) UserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	role := models.Role(r.FormValue("role"))
	me := currentUser(r)
	if !role.Valid() || me == nil || me.ID == id {
		http.Redirect(w, r, "/admin/users?flash=invalid", http.StatusSeeOther)
		return
	}

	if err := a.users.SetRole(r.Context(), id, role); err != nil {
		slog.Error("set role failed", "user_id", id, "error", err)
		http.Redirect(w, r, "/admin/users?flash=failed", http.StatusSeeOther)
		return
	}
	slog.Info("user role changed", "user_id", id, "role", role, "by", me.ID)
	http.Redirect(w, r, "/admin/users?flash=saved", http.StatusSeeOther)
}

// UserDelete removes another user.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	me := currentUser(r)
	if me == nil || me.ID == id {
		http.Redirect(w, r, "/admin/users?flash=invalid", http.StatusSeeOther)
		return
	}

	if err := a.users.Delete(r.Context(), id); err != nil {
		slog.Error("delete user failed", "user_id", id, "error", err)
		http.Redirect(w, r, "/admin/users?flash=failed", http.StatusSeeOther)
		return
	}
	slog.Info("user deleted", "user_id", id, "by", me.ID)
	http.Redirect(w, r, "/admin/users?flash=deleted", http.StatusSeeOther)
}

// Account renders the profile page of the signed-in user.
func (a *Admin) Account(w http.ResponseWriter, r *http.Request) {
	a.renderAccount(w, r, http.StatusOK, "")
}

// AccountPassword changes the password after checking the current one.
func (a *Admin) AccountPassword(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	if me == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	ctx := r.Context()

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	if msg := validatePasswordChange(next, r.FormValue("confirm_password")); msg != "" {
		a.renderAccount(w, r, http.StatusUnprocessableEntity, msg)
		return
	}

	user, err := a.users.FindByID(ctx, me.ID)
	if err != nil || user == nil {
		if err != nil {
			slog.Error("find user failed", "user_id", me.ID, "error", err)
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !a.users.CheckPassword(user, current) {
		a.renderAccount(w, r, http.StatusUnprocessableEntity, "Current password is incorrect.")
		return
	}

	if err := a.users.UpdatePassword(ctx, user.ID, next); err != nil {
		slog.Error("update password failed", "user_id", user.ID, "error", err)
		a.renderAccount(w, r, http.StatusInternalServerError, "The password could not be changed.")
		return
	}
	slog.Info("password changed", "user_id", user.ID)
	http.Redirect(w, r, "/admin/account?flash=password", http.StatusSeeOther)
}

func (a *Admin) renderAccount(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	var user *models.User
	if me := currentUser(r); me != nil {
		u, err := a.users.FindByID(r.Context(), me.ID)
		if err != nil {
			slog.Error("find user failed", "user_id", me.ID, "error", err)
		}
		user = u
	}

	data := map[string]any{"User": user}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	a.renderer.PageStatus(w, r, status, "account", &render.PageData{
		Title:   "Account",
		Section: "account",
		Data:    data,
		Flashes: flashesFrom(r),
	})
}
