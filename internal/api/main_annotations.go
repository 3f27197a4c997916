// @title           archiv-index API
// @version         1.0
// @description     Archived documentation versions of a repository, as listed by the GitHub contents API.
// @BasePath        /api/v1
package api
