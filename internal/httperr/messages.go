package httperr

import "net/http"

type message struct {
	status int
	text   string
}

var messages = map[string]message{
	// auth
	"username_not_found":       {http.StatusUnauthorized, "Nome de usuário não encontrado."},
	"invalid_credentials":      {http.StatusUnauthorized, "Nome de usuário ou senha incorretos."},
	"account_disabled":         {http.StatusForbidden, "Conta desativada. Procure um administrador."},
	"email_already_registered": {http.StatusConflict, "Este email já está cadastrado."},
	"username_already_exists":  {http.StatusConflict, "Este nome de usuário já está em uso."},
	"invalid_email_domain":     {http.StatusBadRequest, "O domínio do e-mail informado não parece ser válido."},
	"forbidden_role":           {http.StatusForbidden, "Apenas administradores podem criar outros administradores."},
	"no_permission":            {http.StatusForbidden, "Você não tem permissão para cadastrar usuários."},
	"wrong_current_password":   {http.StatusBadRequest, "Senha atual incorreta."},
	"password_mismatch":        {http.StatusBadRequest, "A confirmação não confere com a nova senha."},
	"weak_password":            {http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres."},
	"invalid_role":             {http.StatusBadRequest, "Perfil inválido."},
	"cannot_deactivate_self":   {http.StatusBadRequest, "Você não pode desativar a sua própria conta."},

	// perfis
	"profile_not_found": {http.StatusNotFound, "Usuário não encontrado."},
	"invalid_image":     {http.StatusBadRequest, "Imagem inválida. Envie um arquivo JPEG ou PNG."},
	"invalid_theme":     {http.StatusBadRequest, "Tema inválido."},

	// clientes
	"client_not_found":   {http.StatusNotFound, "Cliente não encontrado."},
	"invalid_document":   {http.StatusBadRequest, "CPF inválido."},
	"invalid_state":      {http.StatusBadRequest, "UF inválida."},
	"invalid_birth_date": {http.StatusBadRequest, "Data de nascimento inválida."},
	"invalid_email":      {http.StatusBadRequest, "E-mail inválido."},
	"name_required":      {http.StatusBadRequest, "Nome é obrigatório."},
	"seller_not_found":   {http.StatusBadRequest, "Vendedor não encontrado."},

	// agenda
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Data ou hora inválida."},
	"missing_fields":        {http.StatusBadRequest, "Preencha todos os campos obrigatórios."},

	// pedidos
	"order_not_found":           {http.StatusNotFound, "Pedido não encontrado."},
	"invalid_payment_plan":      {http.StatusBadRequest, "Forma de pagamento inválida."},
	"invalid_status":            {http.StatusBadRequest, "Status inválido."},
	"invalid_status_transition": {http.StatusBadRequest, "O pedido não pode mudar para este status."},

	// relatórios
	"invalid_period": {http.StatusBadRequest, "Período inválido."},

	// cep
	"invalid_cep":   {http.StatusBadRequest, "CEP inválido."},
	"cep_not_found": {http.StatusNotFound, "CEP não encontrado."},

	// geral
	"invalid_request": {http.StatusBadRequest, "Requisição inválida."},

	// infra opcional
	"storage_unavailable":  {http.StatusServiceUnavailable, "Armazenamento de arquivos indisponível."},
	"payments_unavailable": {http.StatusServiceUnavailable, "Pagamento online indisponível."},
}
